package handlers

import (
	"fmt"
	"net/http"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

// Tab 1 — population distribution.

// GetTopPopulation serves the top-N most populous municipalities as a
// horizontal bar ranking.
func GetTopPopulation(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || !p.snap.table.HasColumn(dataset.ColMunicipio) {
		skipChart(w, "population/top", "population year column")
		return
	}

	key := p.cacheKey("chart:population:top")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  fmt.Sprintf("Top %d Municípios por População (%s)", p.topN, yearLabel(p.popCol)),
		XLabel: "População Estimada",
		YLabel: "Município - Estado",
		Data:   analysis.TopN(view, p.popCol, p.topN),
	})
}

// GetPopulationByState serves total population per state, descending.
func GetPopulationByState(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || !p.snap.table.HasColumn(dataset.ColEstado) {
		skipChart(w, "population/by-state", "population or estado column")
		return
	}

	key := p.cacheKey("chart:population:by-state")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title:  "População Total por Estado",
		XLabel: "Estado",
		YLabel: "População Total",
		Data:   analysis.GroupSum(view, dataset.ColEstado, p.popCol),
	})
}

// GetPopulationByBiome serves the population share per biome for the donut
// chart. Municipalities without a biome fall under "Sem informação".
func GetPopulationByBiome(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	if p.popCol == "" || p.biomeCol == "" {
		skipChart(w, "population/by-biome", "population or biome column")
		return
	}

	key := p.cacheKey("chart:population:by-biome")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	respondJSON(w, key, ChartResponse{
		Title: "Distribuição Populacional por Bioma",
		Data:  analysis.GroupSum(view, p.biomeCol, p.popCol),
	})
}
