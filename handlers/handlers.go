package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/Joaovitor2710/dashboard-ibge/analysis"
	"github.com/Joaovitor2710/dashboard-ibge/config"
	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/utils"
)

// appState bundles the table with its discovered column families so a
// reload swaps everything in one step; handlers must never see a new table
// paired with old families. The struct is immutable once published.
type appState struct {
	cfg   *config.Global
	table *dataset.Table

	popCols   []string
	gdpCols   []string
	hdiCols   []string
	biomeCols []string
}

var (
	stateMu sync.RWMutex
	state   *appState
)

// Init wires a loaded dataset into the handlers and discovers the
// year-suffixed column families. It is called at startup and again on
// reload, so the published state is guarded against concurrent readers.
func Init(c *config.Global, t *dataset.Table) {
	s := &appState{
		cfg:       c,
		table:     t,
		popCols:   analysis.YearColumns(t, dataset.PrefixPopulation),
		gdpCols:   analysis.YearColumns(t, dataset.PrefixGDP),
		hdiCols:   analysis.YearColumns(t, dataset.PrefixHDI),
		biomeCols: analysis.BiomeColumns(t),
	}

	stateMu.Lock()
	state = s
	stateMu.Unlock()

	log.Printf("Handlers initialized: %d rows, %d population years, %d gdp years, %d hdi years",
		t.NumRows(), len(s.popCols), len(s.gdpCols), len(s.hdiCols))
}

// snapshot returns the current state; each request resolves it once and
// works against that snapshot for its whole lifetime.
func snapshot() *appState {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return state
}

// viewParams is the analyst's current selection, parsed from query
// parameters shared by every chart, map, and export endpoint.
type viewParams struct {
	snap *appState

	states   []string
	minPop   float64
	popCol   string
	gdpCol   string
	hdiCol   string
	biomeCol string
	topN     int
}

func parseViewParams(r *http.Request) viewParams {
	s := snapshot()
	q := r.URL.Query()

	var states []string
	if raw := strings.TrimSpace(q.Get("states")); raw != "" {
		for _, st := range strings.Split(raw, ",") {
			if st = strings.TrimSpace(st); st != "" {
				states = append(states, st)
			}
		}
	}

	return viewParams{
		snap:     s,
		states:   states,
		minPop:   utils.ParseFloatOrZero(q.Get("min_population")),
		popCol:   yearColumn(q.Get("pop_year"), s.popCols),
		gdpCol:   yearColumn(q.Get("gdp_year"), s.gdpCols),
		hdiCol:   yearColumn(q.Get("hdi_year"), s.hdiCols),
		biomeCol: analysis.LatestColumn(s.biomeCols),
		topN:     analysis.ClampTopN(utils.ParseIntOrDefault(q.Get("top_n"), analysis.DefaultTopN)),
	}
}

// yearColumn resolves a requested column against its family, defaulting to
// the latest year. A request for a column the dataset does not carry falls
// back to the default rather than failing.
func yearColumn(requested string, family []string) string {
	for _, c := range family {
		if c == requested {
			return requested
		}
	}
	return analysis.LatestColumn(family)
}

// cacheKey folds the full selection into a chart-cache key.
func (p viewParams) cacheKey(prefix string) string {
	return config.CacheKey(prefix,
		strings.Join(p.states, "|"), p.minPop, p.popCol, p.gdpCol, p.hdiCol, p.topN)
}

func (p viewParams) filteredView() *dataset.Table {
	return analysis.Apply(p.snap.table, analysis.Filter{
		States:        p.states,
		MinPopulation: p.minPop,
		PopulationCol: p.popCol,
	})
}

// ChartResponse is the envelope every chart endpoint returns: the shaped
// rows plus the presentation configuration the frontend applies verbatim.
type ChartResponse struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label,omitempty"`
	YLabel string      `json:"y_label,omitempty"`
	Data   interface{} `json:"data"`
}

// skipChart implements the optional-visualization contract: when a chart's
// required column is absent the section is omitted, never failed.
func skipChart(w http.ResponseWriter, name, missing string) {
	log.Printf("Skipping %s: %s not available in dataset", name, missing)
	w.WriteHeader(http.StatusNoContent)
}

// respondFromCache writes a previously shaped payload if one exists.
func respondFromCache(w http.ResponseWriter, key string) bool {
	if config.ChartCache == nil {
		return false
	}
	if cached, found := config.ChartCache.Get(key); found {
		writeJSONBytes(w, cached.([]byte))
		return true
	}
	return false
}

// respondJSON marshals the payload, caches it under key, and writes it.
func respondJSON(w http.ResponseWriter, key string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	if config.ChartCache != nil && key != "" {
		config.ChartCache.SetDefault(key, body)
	}
	writeJSONBytes(w, body)
}

func writeJSONBytes(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Write(body)
}

// yearLabel extracts the trailing year of a column for chart titles.
func yearLabel(col string) string {
	i := strings.LastIndex(col, "_")
	if i < 0 {
		return col
	}
	return col[i+1:]
}
