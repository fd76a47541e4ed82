package analysis

import (
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/models"
	"github.com/Joaovitor2710/dashboard-ibge/utils"
)

// elevationScale caps the tallest 3D column; elevations are relative to the
// largest population of the currently filtered view, not absolute.
const elevationScale = 500000

// GeoPoints returns the municipalities that carry parseable coordinates,
// with population and HDI zero-filled for marker sizing and coloring. Rows
// without usable latitude/longitude are dropped before any map rendering.
func GeoPoints(t *dataset.Table, popCol, hdiCol string) []models.MapPoint {
	var points []models.MapPoint
	for _, row := range t.Rows {
		lat, okLat := utils.ParseFloat(t.Value(row, dataset.ColLatitude))
		lon, okLon := utils.ParseFloat(t.Value(row, dataset.ColLongitude))
		if !okLat || !okLon {
			continue
		}
		points = append(points, models.MapPoint{
			Municipio:  t.Value(row, dataset.ColMunicipio),
			Estado:     t.Value(row, dataset.ColEstado),
			Latitude:   lat,
			Longitude:  lon,
			Population: utils.ParseFloatOrZero(t.Value(row, popCol)),
			HDI:        utils.ParseFloatOrZero(t.Value(row, hdiCol)),
		})
	}
	return points
}

// GeoColumns builds the extruded-column rows for the 3D map plus the initial
// camera centered on the mean coordinate of the kept rows.
func GeoColumns(t *dataset.Table, popCol string) ([]models.MapColumn, models.ViewState) {
	points := GeoPoints(t, popCol, "")

	var maxPop float64
	for _, p := range points {
		if p.Population > maxPop {
			maxPop = p.Population
		}
	}

	columns := make([]models.MapColumn, 0, len(points))
	var latSum, lonSum float64
	for _, p := range points {
		var elevation float64
		if maxPop > 0 {
			elevation = p.Population / maxPop * elevationScale
		}
		columns = append(columns, models.MapColumn{
			Municipio:  p.Municipio,
			Estado:     p.Estado,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Population: p.Population,
			Elevation:  elevation,
		})
		latSum += p.Latitude
		lonSum += p.Longitude
	}

	view := models.ViewState{Zoom: 3.5, Pitch: 50, Bearing: -30}
	if len(columns) > 0 {
		view.Latitude = latSum / float64(len(columns))
		view.Longitude = lonSum / float64(len(columns))
	}
	return columns, view
}
