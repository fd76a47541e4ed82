package handlers

import (
	"net/http"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

// Tab 2 — economic development.

// GetEconomyScatter serves population x GDP per capita points, each tagged
// with its porte, for the log-x scatter.
func GetEconomyScatter(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || p.gdpCol == "" || !p.snap.table.HasColumn(dataset.ColMunicipio) {
		skipChart(w, "economy/scatter", "population or gdp year column")
		return
	}

	key := p.cacheKey("chart:economy:scatter")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "Relação entre População e PIB per capita",
		XLabel: "População",
		YLabel: "PIB per capita (R$)",
		Data:   analysis.ScatterRows(view, p.popCol, p.gdpCol),
	})
}

// GetGDPByState serves mean GDP per capita per state, ascending.
func GetGDPByState(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.gdpCol == "" || !p.snap.table.HasColumn(dataset.ColEstado) {
		skipChart(w, "economy/by-state", "gdp or estado column")
		return
	}

	key := p.cacheKey("chart:economy:by-state")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "PIB per capita Médio por Estado",
		XLabel: "PIB per capita Médio (R$)",
		YLabel: "Estado",
		Data:   analysis.GroupMean(view, dataset.ColEstado, p.gdpCol),
	})
}

// GetGDPBySize serves GDP per capita values bucketed by porte for the box
// plot.
func GetGDPBySize(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || p.gdpCol == "" {
		skipChart(w, "economy/by-size", "population or gdp year column")
		return
	}

	key := p.cacheKey("chart:economy:by-size")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "Distribuição do PIB per capita por Porte Municipal",
		XLabel: "Porte do Município",
		YLabel: "PIB per capita (R$)",
		Data:   analysis.SizeBuckets(view, p.popCol, p.gdpCol),
	})
}
