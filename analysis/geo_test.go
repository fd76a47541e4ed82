package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

func geoTable() *dataset.Table {
	return dataset.NewTable(
		[]string{"municipio", "estado", popCol, "idh_2010", "latitude", "longitude"},
		[][]string{
			{"São Paulo", "SP", "12000000", "0.805", "-23.5505", "-46.6333"},
			{"Manaus", "AM", "2200000", "0.737", "-3.1190", "-60.0217"},
			{"Sem Coordenada", "SP", "50000", "0.700", "", ""},
			{"Coordenada Ruim", "RJ", "60000", "0.710", "abc", "-43.0"},
		},
	)
}

func TestGeoPointsDropUnparseableCoordinates(t *testing.T) {
	points := analysis.GeoPoints(geoTable(), popCol, "idh_2010")
	require.Len(t, points, 2)
	assert.Equal(t, "São Paulo", points[0].Municipio)
	assert.Equal(t, 0.805, points[0].HDI)
	assert.Equal(t, 12000000.0, points[0].Population)
}

func TestGeoPointsZeroFillMetrics(t *testing.T) {
	table := dataset.NewTable(
		[]string{"municipio", "estado", popCol, "latitude", "longitude"},
		[][]string{{"Vila", "SP", "", "-20.0", "-45.0"}},
	)
	points := analysis.GeoPoints(table, popCol, "idh_2010")
	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].Population)
	assert.Equal(t, 0.0, points[0].HDI)
}

func TestGeoColumnsElevationIsScaleRelative(t *testing.T) {
	columns, view := analysis.GeoColumns(geoTable(), popCol)
	require.Len(t, columns, 2)

	// The largest population of the filtered set gets the full height.
	assert.Equal(t, 500000.0, columns[0].Elevation)
	assert.InDelta(t, 2200000.0/12000000.0*500000, columns[1].Elevation, 1e-6)

	// Camera centered on the mean coordinate of the kept rows.
	assert.InDelta(t, (-23.5505+-3.1190)/2, view.Latitude, 1e-6)
	assert.InDelta(t, (-46.6333+-60.0217)/2, view.Longitude, 1e-6)
	assert.Equal(t, 3.5, view.Zoom)
}

func TestGeoColumnsEmptyView(t *testing.T) {
	table := dataset.NewTable([]string{"municipio", "latitude", "longitude", popCol}, nil)
	columns, view := analysis.GeoColumns(table, popCol)
	assert.Empty(t, columns)
	assert.Equal(t, 0.0, view.Latitude)
}
