package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/utils"
)

const popCol = "populacao_estimada_2024"

func sampleTable() *dataset.Table {
	return dataset.NewTable(
		[]string{"municipio", "estado", popCol, "idh_2010"},
		[][]string{
			{"São Paulo", "SP", "12000000", "0.805"},
			{"Rio de Janeiro", "RJ", "6000000", "0.799"},
			{"Campinas", "SP", "1200000", "0.805"},
			{"Povoado Novo", "SP", "", "0.600"},
			{"Vila Ruim", "RJ", "n/d", "0.550"},
		},
	)
}

func TestApplyEmptyStatesIsNoOp(t *testing.T) {
	table := sampleTable()
	view := analysis.Apply(table, analysis.Filter{PopulationCol: popCol})
	assert.Equal(t, table.NumRows(), view.NumRows())
}

func TestApplyStateMembership(t *testing.T) {
	view := analysis.Apply(sampleTable(), analysis.Filter{
		States:        []string{"SP"},
		PopulationCol: popCol,
	})
	require.Equal(t, 3, view.NumRows())
	for _, row := range view.Rows {
		assert.Equal(t, "SP", view.Value(row, "estado"))
	}
}

func TestApplyStateMatchIsExact(t *testing.T) {
	// No case normalization: "sp" matches nothing.
	view := analysis.Apply(sampleTable(), analysis.Filter{States: []string{"sp"}})
	assert.Equal(t, 0, view.NumRows())
}

func TestApplyPopulationThresholdIsInclusive(t *testing.T) {
	view := analysis.Apply(sampleTable(), analysis.Filter{
		MinPopulation: 1200000,
		PopulationCol: popCol,
	})
	require.Equal(t, 3, view.NumRows())
	for _, row := range view.Rows {
		assert.GreaterOrEqual(t, utils.ParseFloatOrZero(view.Value(row, popCol)), 1200000.0)
	}
}

func TestApplyMissingPopulationCountsAsZero(t *testing.T) {
	// Threshold 0 keeps rows with missing/unparseable population…
	view := analysis.Apply(sampleTable(), analysis.Filter{PopulationCol: popCol})
	assert.Equal(t, 5, view.NumRows())

	// …any positive threshold excludes them.
	view = analysis.Apply(sampleTable(), analysis.Filter{
		MinPopulation: 1,
		PopulationCol: popCol,
	})
	assert.Equal(t, 3, view.NumRows())
}

func TestApplyScenarioTwoStates(t *testing.T) {
	table := dataset.NewTable(
		[]string{"municipio", "estado", popCol},
		[][]string{
			{"São Paulo", "SP", "12000000"},
			{"Rio de Janeiro", "RJ", "6000000"},
		},
	)
	view := analysis.Apply(table, analysis.Filter{
		States:        []string{"SP"},
		MinPopulation: 0,
		PopulationCol: popCol,
	})
	require.Equal(t, 1, view.NumRows())
	assert.Equal(t, "São Paulo", view.Value(view.Rows[0], "municipio"))

	top := analysis.TopN(view, popCol, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "São Paulo", top[0].Municipio)
	assert.Equal(t, 12000000.0, top[0].Value)
}

func TestStates(t *testing.T) {
	assert.Equal(t, []string{"RJ", "SP"}, analysis.States(sampleTable()))
}

func TestMaxAndSumSkipMissing(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, 12000000.0, analysis.MaxValue(table, popCol))
	// Present-values-only sum: the two unparseable cells contribute nothing.
	assert.Equal(t, 19200000.0, analysis.SumValue(table, popCol))
}
