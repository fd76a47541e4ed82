package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

type MetaResponse struct {
	States          []string `json:"states"`
	PopulationYears []string `json:"population_years"`
	GDPYears        []string `json:"gdp_years"`
	HDIYears        []string `json:"hdi_years"`
	BiomeYears      []string `json:"biome_years"`
	DefaultPopYear  string   `json:"default_pop_year"`
	DefaultGDPYear  string   `json:"default_gdp_year"`
	DefaultHDIYear  string   `json:"default_hdi_year"`
	MaxPopulation   float64  `json:"max_population"`
	TopNMin         int      `json:"top_n_min"`
	TopNMax         int      `json:"top_n_max"`
	TotalRows       int      `json:"total_rows"`
}

// GetMeta drives the sidebar widgets: state multi-select, the three year
// selectors, and the slider bounds.
func GetMeta(w http.ResponseWriter, r *http.Request) {
	s := snapshot()
	respondJSON(w, "", MetaResponse{
		States:          analysis.States(s.table),
		PopulationYears: s.popCols,
		GDPYears:        s.gdpCols,
		HDIYears:        s.hdiCols,
		BiomeYears:      s.biomeCols,
		DefaultPopYear:  analysis.LatestColumn(s.popCols),
		DefaultGDPYear:  analysis.LatestColumn(s.gdpCols),
		DefaultHDIYear:  analysis.LatestColumn(s.hdiCols),
		MaxPopulation:   analysis.MaxValue(s.table, analysis.LatestColumn(s.popCols)),
		TopNMin:         analysis.TopNMin,
		TopNMax:         analysis.TopNMax,
		TotalRows:       s.table.NumRows(),
	})
}

type SummaryResponse struct {
	FilteredRows    int     `json:"filtered_rows"`
	TotalPopulation float64 `json:"total_population"`
}

// GetSummary serves the sidebar metrics for the current selection.
func GetSummary(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)

	key := p.cacheKey("summary")
	if respondFromCache(w, key) {
		return
	}

	view := p.filteredView()
	var totalPop float64
	if p.popCol != "" {
		totalPop = analysis.SumValue(view, p.popCol)
	}
	respondJSON(w, key, SummaryResponse{
		FilteredRows:    view.NumRows(),
		TotalPopulation: totalPop,
	})
}

type HealthResponse struct {
	Status  string `json:"status"`
	Source  string `json:"source"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Error   string `json:"error,omitempty"`
}

// HealthCheck reports dataset and source status.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	s := snapshot()
	response := HealthResponse{Status: "ok"}

	if s == nil || s.table == nil {
		response.Status = "error"
		response.Error = "dataset not loaded"
	} else {
		response.Source = s.cfg.DatasetSource
		response.Rows = s.table.NumRows()
		response.Columns = len(s.table.Columns)
	}

	if s != nil && s.cfg.DatasetSource == "postgres" && config.DB != nil {
		if err := config.DB.Ping(); err != nil {
			response.Status = "error"
			response.Error = err.Error()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ReloadDataset drops the memoized table and re-reads it from the source,
// publishes the new state, then clears every shaped-response cache.
func ReloadDataset(w http.ResponseWriter, r *http.Request) {
	s := snapshot()

	var (
		t   *dataset.Table
		err error
	)
	switch s.cfg.DatasetSource {
	case "postgres":
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()
		t, err = dataset.LoadPostgres(ctx, config.DB, s.cfg.DBTable)
	default:
		dataset.Invalidate(s.cfg.DatasetPath)
		t, err = dataset.Load(s.cfg.DatasetPath)
	}
	if err != nil {
		log.Printf("ReloadDataset: %v", err)
		http.Error(w, "Failed to reload dataset", http.StatusInternalServerError)
		return
	}

	Init(s.cfg, t)
	config.ClearAllCaches()
	log.Printf("Dataset reloaded: %d rows", t.NumRows())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"status": "reloaded", "rows": t.NumRows()})
}
