package handlers

import (
	"net/http"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/models"
)

// Tab 4 — geographic view. Both endpoints drop rows without parseable
// coordinates before anything reaches the map renderers.

// GetMapPoints serves the 2D map markers: size = population, color = HDI.
func GetMapPoints(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if !p.snap.table.HasColumn(dataset.ColLatitude) || !p.snap.table.HasColumn(dataset.ColLongitude) {
		skipChart(w, "maps/points", "latitude/longitude columns")
		return
	}

	key := p.cacheKey("map:points")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title: "Municípios Brasileiros: Tamanho = População, Cor = IDH",
		Data:  analysis.GeoPoints(view, p.popCol, p.hdiCol),
	})
}

type mapColumnsResponse struct {
	Title     string             `json:"title"`
	ViewState models.ViewState   `json:"view_state"`
	Data      []models.MapColumn `json:"data"`
}

// GetMapColumns serves the 3D extruded columns, elevation normalized to the
// largest population of the filtered view, plus the initial camera.
func GetMapColumns(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if !p.snap.table.HasColumn(dataset.ColLatitude) || !p.snap.table.HasColumn(dataset.ColLongitude) || p.popCol == "" {
		skipChart(w, "maps/columns", "coordinates or population column")
		return
	}

	key := p.cacheKey("map:columns")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	columns, viewState := analysis.GeoColumns(view, p.popCol)
	respondJSON(w, key, mapColumnsResponse{
		Title:     "Mapa 3D com Barras (População)",
		ViewState: viewState,
		Data:      columns,
	})
}
