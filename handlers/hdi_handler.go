package handlers

import (
	"fmt"
	"net/http"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

// Tab 3 — quality of life (HDI).

// hdiHighThreshold marks the UNDP "high development" line drawn on the
// per-state box plot.
const hdiHighThreshold = 0.7

type hdiByStateResponse struct {
	ChartResponse
	Threshold float64 `json:"threshold"`
}

// GetHDIByState serves per-state HDI distributions, states ordered by mean
// descending, for the box plot.
func GetHDIByState(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.hdiCol == "" || !p.snap.table.HasColumn(dataset.ColEstado) {
		skipChart(w, "hdi/by-state", "hdi or estado column")
		return
	}

	key := p.cacheKey("chart:hdi:by-state")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, hdiByStateResponse{
		ChartResponse: ChartResponse{
			Title:  fmt.Sprintf("Distribuição do IDH por Estado (%s)", yearLabel(p.hdiCol)),
			XLabel: "Estado",
			YLabel: "IDH",
			Data:   analysis.StateDistributions(view, p.hdiCol),
		},
		Threshold: hdiHighThreshold,
	})
}

// GetHDIBySize serves HDI values bucketed by porte for the violin plot.
func GetHDIBySize(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || p.hdiCol == "" {
		skipChart(w, "hdi/by-size", "population or hdi year column")
		return
	}

	key := p.cacheKey("chart:hdi:by-size")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "IDH por Porte Municipal",
		XLabel: "Porte do Município",
		YLabel: "IDH",
		Data:   analysis.SizeBuckets(view, p.popCol, p.hdiCol),
	})
}

// GetHDIExtremes serves the 10 best and 10 worst municipalities by HDI,
// tagged for the two-color comparison bar.
func GetHDIExtremes(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.hdiCol == "" || !p.snap.table.HasColumn(dataset.ColMunicipio) {
		skipChart(w, "hdi/extremes", "hdi year column")
		return
	}

	key := p.cacheKey("chart:hdi:extremes")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "Municípios com Melhor e Pior IDH",
		XLabel: "IDH",
		YLabel: "Município",
		Data:   analysis.Extremes(view, p.hdiCol),
	})
}
