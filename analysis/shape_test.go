package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/models"
)

const gdpCol = "pib_per_capita_2021"

func shapeTable() *dataset.Table {
	return dataset.NewTable(
		[]string{"municipio", "estado", popCol, gdpCol, "idh_2010", "bioma_2024"},
		[][]string{
			{"São Paulo", "SP", "12000000", "60000", "0.805", "Mata Atlântica"},
			{"Campinas", "SP", "1200000", "55000", "0.805", "Mata Atlântica"},
			{"Rio de Janeiro", "RJ", "6000000", "50000", "0.799", "Mata Atlântica"},
			{"Manaus", "AM", "2200000", "35000", "0.737", "Amazônia"},
			{"Iranduba", "AM", "48000", "15000", "0.613", ""},
			{"Vila Sem Dados", "RJ", "20000", "", "", "Mata Atlântica"},
		},
	)
}

func TestTopNSizeAndOrder(t *testing.T) {
	top := analysis.TopN(shapeTable(), popCol, 5)
	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Value, top[i].Value)
	}
	assert.Equal(t, "São Paulo", top[0].Municipio)
	assert.Equal(t, "São Paulo - SP", top[0].Label)
}

func TestTopNFewerRowsThanN(t *testing.T) {
	top := analysis.TopN(shapeTable(), popCol, 50)
	assert.Len(t, top, 6)
}

func TestClampTopN(t *testing.T) {
	assert.Equal(t, analysis.TopNMin, analysis.ClampTopN(1))
	assert.Equal(t, analysis.TopNMax, analysis.ClampTopN(200))
	assert.Equal(t, 15, analysis.ClampTopN(15))
}

func TestGroupSumByState(t *testing.T) {
	groups := analysis.GroupSum(shapeTable(), "estado", popCol)
	require.Len(t, groups, 3)
	// Sorted descending by the summed value.
	assert.Equal(t, "SP", groups[0].Key)
	assert.Equal(t, 13200000.0, groups[0].Value)
	assert.Equal(t, "RJ", groups[1].Key)
	assert.Equal(t, 6020000.0, groups[1].Value)
	assert.Equal(t, "AM", groups[2].Key)
}

func TestGroupSumFillsEmptyKeys(t *testing.T) {
	groups := analysis.GroupSum(shapeTable(), "bioma_2024", popCol)
	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Contains(t, keys, "Sem informação")
}

func TestGroupMeanExcludesMissing(t *testing.T) {
	groups := analysis.GroupMean(shapeTable(), "estado", gdpCol)
	require.Len(t, groups, 3)
	// Ascending order, and RJ's mean ignores the row with no GDP value
	// entirely (not a zero).
	assert.Equal(t, "AM", groups[0].Key)
	assert.Equal(t, 25000.0, groups[0].Value)
	for _, g := range groups {
		if g.Key == "RJ" {
			assert.Equal(t, 50000.0, g.Value)
			assert.Equal(t, 1, g.Count)
		}
	}
}

func TestScatterRowsDropMissingAndTagPorte(t *testing.T) {
	points := analysis.ScatterRows(shapeTable(), popCol, gdpCol)
	require.Len(t, points, 5) // Vila Sem Dados has no GDP value

	byName := map[string]models.ScatterPoint{}
	for _, p := range points {
		byName[p.Municipio] = p
	}
	assert.Equal(t, models.SizeMetropolis, byName["São Paulo"].Porte)
	assert.Equal(t, models.SizeMedium, byName["Iranduba"].Porte)
}

func TestSizeBucketsKeepEveryPorte(t *testing.T) {
	series := analysis.SizeBuckets(shapeTable(), popCol, gdpCol)
	require.Len(t, series, len(models.SizeCategories))

	byPorte := map[models.SizeCategory][]float64{}
	for _, s := range series {
		byPorte[s.Porte] = s.Values
	}
	assert.Empty(t, byPorte[models.SizeSmall])
	assert.Equal(t, []float64{15000}, byPorte[models.SizeMedium])
	assert.Empty(t, byPorte[models.SizeLarge])
	// São Paulo, Campinas, Rio, and Manaus are all at or above 500k.
	assert.Equal(t, []float64{60000, 55000, 50000, 35000}, byPorte[models.SizeMetropolis])
}

func TestStateDistributionsOrderedByMeanDesc(t *testing.T) {
	series := analysis.StateDistributions(shapeTable(), "idh_2010")
	require.Len(t, series, 3)
	assert.Equal(t, "SP", series[0].Estado)
	assert.InDelta(t, 0.805, series[0].Mean, 1e-9)
	for i := 1; i < len(series); i++ {
		assert.GreaterOrEqual(t, series[i-1].Mean, series[i].Mean)
	}
	// The RJ row without an HDI value is excluded from its series.
	for _, s := range series {
		if s.Estado == "RJ" {
			assert.Len(t, s.Values, 1)
		}
	}
}

func TestExtremesTagsAndConcatenates(t *testing.T) {
	rows := analysis.Extremes(shapeTable(), "idh_2010")
	// 5 parseable rows: 5 best then 5 worst.
	require.Len(t, rows, 10)
	assert.Equal(t, analysis.CategoryBest, rows[0].Categoria)
	assert.Equal(t, analysis.CategoryWorst, rows[len(rows)-1].Categoria)

	// Best block descending, worst block ascending from the bottom.
	assert.Equal(t, 0.805, rows[0].Value)
	assert.Equal(t, "Iranduba", rows[5].Municipio)
}
