package analysis

import (
	"sort"

	"github.com/Joaovitor2710/dashboard-ibge/dataset"
	"github.com/Joaovitor2710/dashboard-ibge/models"
	"github.com/Joaovitor2710/dashboard-ibge/utils"
)

const (
	// TopNMin/Max bound the Top-N slider; DefaultTopN matches its initial
	// position.
	TopNMin     = 5
	TopNMax     = 50
	DefaultTopN = 15

	extremesSize = 10

	// Tags of the best/worst comparison chart.
	CategoryBest  = "Top 10 Melhores"
	CategoryWorst = "Top 10 Piores"

	// Label used when a grouped categorical cell is empty.
	missingGroupLabel = "Sem informação"
)

// ClampTopN snaps an arbitrary N into the slider range.
func ClampTopN(n int) int {
	if n < TopNMin {
		return TopNMin
	}
	if n > TopNMax {
		return TopNMax
	}
	return n
}

// TopN returns the n municipalities with the largest value of col, sorted
// descending, as labeled ranking rows. Unparseable values count as 0. Ties
// keep the underlying row order (stable sort).
func TopN(t *dataset.Table, col string, n int) []models.RankedMunicipality {
	rows := make([][]string, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return utils.ParseFloatOrZero(t.Value(rows[i], col)) > utils.ParseFloatOrZero(t.Value(rows[j], col))
	})
	if n < len(rows) {
		rows = rows[:n]
	}

	ranked := make([]models.RankedMunicipality, 0, len(rows))
	for _, row := range rows {
		m := t.Value(row, dataset.ColMunicipio)
		e := t.Value(row, dataset.ColEstado)
		ranked = append(ranked, models.RankedMunicipality{
			Municipio: m,
			Estado:    e,
			Label:     m + " - " + e,
			Value:     utils.ParseFloatOrZero(t.Value(row, col)),
		})
	}
	return ranked
}

// GroupSum aggregates valCol by keyCol, summing only the cells that parse.
// Empty keys are grouped under "Sem informação". Result is sorted by value,
// descending.
func GroupSum(t *dataset.Table, keyCol, valCol string) []models.GroupAggregate {
	return groupBy(t, keyCol, valCol, false, true)
}

// GroupMean aggregates valCol by keyCol; rows whose value does not parse are
// excluded from both numerator and denominator. Result is sorted by value,
// ascending.
func GroupMean(t *dataset.Table, keyCol, valCol string) []models.GroupAggregate {
	return groupBy(t, keyCol, valCol, true, false)
}

func groupBy(t *dataset.Table, keyCol, valCol string, mean, descending bool) []models.GroupAggregate {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, row := range t.Rows {
		key := t.Value(row, keyCol)
		if key == "" {
			key = missingGroupLabel
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			order = append(order, key)
		}
		if v, parsed := utils.ParseFloat(t.Value(row, valCol)); parsed {
			b.sum += v
			b.count++
		}
	}

	groups := make([]models.GroupAggregate, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		g := models.GroupAggregate{Key: key, Value: b.sum, Count: b.count}
		if mean {
			if b.count == 0 {
				continue
			}
			g.Value = b.sum / float64(b.count)
		}
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if descending {
			return groups[i].Value > groups[j].Value
		}
		return groups[i].Value < groups[j].Value
	})
	return groups
}

// ScatterRows pairs population with GDP per capita per municipality, tagging
// each with its porte. Rows missing either metric are dropped.
func ScatterRows(t *dataset.Table, popCol, gdpCol string) []models.ScatterPoint {
	var points []models.ScatterPoint
	for _, row := range t.Rows {
		pop, okPop := utils.ParseFloat(t.Value(row, popCol))
		gdp, okGDP := utils.ParseFloat(t.Value(row, gdpCol))
		if !okPop || !okGDP {
			continue
		}
		points = append(points, models.ScatterPoint{
			Municipio:    t.Value(row, dataset.ColMunicipio),
			Estado:       t.Value(row, dataset.ColEstado),
			Population:   pop,
			GDPPerCapita: gdp,
			Porte:        models.ClassifySize(pop),
		})
	}
	return points
}

// SizeBuckets splits valCol by porte bucket for box/violin rendering. Rows
// missing the population or the value are dropped; every bucket appears in
// the result even when empty, keeping the x axis stable.
func SizeBuckets(t *dataset.Table, popCol, valCol string) []models.SizeSeries {
	byPorte := make(map[models.SizeCategory][]float64, len(models.SizeCategories))
	for _, row := range t.Rows {
		pop, okPop := utils.ParseFloat(t.Value(row, popCol))
		v, okVal := utils.ParseFloat(t.Value(row, valCol))
		if !okPop || !okVal {
			continue
		}
		porte := models.ClassifySize(pop)
		byPorte[porte] = append(byPorte[porte], v)
	}

	series := make([]models.SizeSeries, 0, len(models.SizeCategories))
	for _, porte := range models.SizeCategories {
		series = append(series, models.SizeSeries{Porte: porte, Values: byPorte[porte]})
	}
	return series
}

// StateDistributions returns the parseable values of valCol per state,
// ordered by per-state mean descending. Feeds the HDI boxplot, whose x axis
// is ordered by mean.
func StateDistributions(t *dataset.Table, valCol string) []models.StateSeries {
	byState := make(map[string][]float64)
	var order []string
	for _, row := range t.Rows {
		v, ok := utils.ParseFloat(t.Value(row, valCol))
		if !ok {
			continue
		}
		state := t.Value(row, dataset.ColEstado)
		if _, seen := byState[state]; !seen {
			order = append(order, state)
		}
		byState[state] = append(byState[state], v)
	}

	series := make([]models.StateSeries, 0, len(order))
	for _, state := range order {
		values := byState[state]
		var sum float64
		for _, v := range values {
			sum += v
		}
		series = append(series, models.StateSeries{
			Estado: state,
			Mean:   sum / float64(len(values)),
			Values: values,
		})
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Mean > series[j].Mean
	})
	return series
}

// Extremes returns the 10 municipalities with the largest and the 10 with
// the smallest parseable value of col, tagged and concatenated (best first)
// for the comparison chart.
func Extremes(t *dataset.Table, col string) []models.ExtremeRow {
	var rows [][]string
	for _, row := range t.Rows {
		if _, ok := utils.ParseFloat(t.Value(row, col)); ok {
			rows = append(rows, row)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return utils.ParseFloatOrZero(t.Value(rows[i], col)) > utils.ParseFloatOrZero(t.Value(rows[j], col))
	})

	take := func(rows [][]string, categoria string) []models.ExtremeRow {
		out := make([]models.ExtremeRow, 0, len(rows))
		for _, row := range rows {
			m := t.Value(row, dataset.ColMunicipio)
			e := t.Value(row, dataset.ColEstado)
			out = append(out, models.ExtremeRow{
				Municipio: m,
				Estado:    e,
				Label:     m + " - " + e,
				Value:     utils.ParseFloatOrZero(t.Value(row, col)),
				Categoria: categoria,
			})
		}
		return out
	}

	n := extremesSize
	if n > len(rows) {
		n = len(rows)
	}
	best := take(rows[:n], CategoryBest)

	worst := make([][]string, 0, n)
	for i := len(rows) - 1; i >= len(rows)-n; i-- {
		worst = append(worst, rows[i])
	}
	return append(best, take(worst, CategoryWorst)...)
}
