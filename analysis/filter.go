package analysis

import (
	"sort"

	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/utils"
)

// Filter narrows the dataset to the analyst's current selection. Every chart
// and map endpoint reads only the filtered view it produces.
type Filter struct {
	// States is an exact set-membership test on the raw estado field; no
	// case or accent normalization. Empty means no state filter.
	States []string
	// MinPopulation is inclusive; a row whose population does not parse
	// counts as 0, so it drops out whenever the threshold is positive.
	MinPopulation float64
	// PopulationCol is the selected populacao_estimada_YYYY column. Empty
	// disables the population filter (dataset without that family).
	PopulationCol string
}

// Apply returns the filtered view. The view shares row slices with the
// source table; nothing is copied or mutated.
func Apply(t *dataset.Table, f Filter) *dataset.Table {
	rows := t.Rows

	if len(f.States) > 0 && t.HasColumn(dataset.ColEstado) {
		selected := make(map[string]bool, len(f.States))
		for _, s := range f.States {
			selected[s] = true
		}
		var kept [][]string
		for _, row := range rows {
			if selected[t.Value(row, dataset.ColEstado)] {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	if f.PopulationCol != "" && t.HasColumn(f.PopulationCol) {
		var kept [][]string
		for _, row := range rows {
			if utils.ParseFloatOrZero(t.Value(row, f.PopulationCol)) >= f.MinPopulation {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	return t.WithRows(rows)
}

// States returns the distinct non-empty estado values, sorted. Drives the
// state multi-select in the sidebar.
func States(t *dataset.Table) []string {
	if !t.HasColumn(dataset.ColEstado) {
		return nil
	}
	seen := make(map[string]bool)
	var states []string
	for _, row := range t.Rows {
		s := t.Value(row, dataset.ColEstado)
		if s != "" && !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	sort.Strings(states)
	return states
}

// MaxValue returns the largest parseable value of a column over the table,
// with missing cells counting as 0. Used for the population slider bound.
func MaxValue(t *dataset.Table, col string) float64 {
	var max float64
	for _, row := range t.Rows {
		if v := utils.ParseFloatOrZero(t.Value(row, col)); v > max {
			max = v
		}
	}
	return max
}

// SumValue totals the parseable values of a column; missing cells are
// skipped rather than zero-filled, matching a present-values-only sum.
func SumValue(t *dataset.Table, col string) float64 {
	var sum float64
	for _, row := range t.Rows {
		if v, ok := utils.ParseFloat(t.Value(row, col)); ok {
			sum += v
		}
	}
	return sum
}
