package analysis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

// YearColumns returns the columns of a year-suffixed metric family
// (prefix_YYYY), sorted ascending by the trailing year. A suffix that does
// not parse as an integer sorts as year 0, so malformed columns sink to the
// front instead of disappearing.
func YearColumns(t *dataset.Table, prefix string) []string {
	var cols []string
	for _, c := range t.Columns {
		if strings.HasPrefix(c, prefix+"_") {
			cols = append(cols, c)
		}
	}
	sort.SliceStable(cols, func(i, j int) bool {
		return yearOf(cols[i]) < yearOf(cols[j])
	})
	return cols
}

// BiomeColumns returns the bioma_YYYY columns in header order.
func BiomeColumns(t *dataset.Table) []string {
	var cols []string
	for _, c := range t.Columns {
		if strings.HasPrefix(c, dataset.PrefixBiome+"_") {
			cols = append(cols, c)
		}
	}
	return cols
}

// LatestColumn returns the last element of a year-sorted family, or "" when
// the family is empty. It is the default year selection for every chart.
func LatestColumn(cols []string) string {
	if len(cols) == 0 {
		return ""
	}
	return cols[len(cols)-1]
}

func yearOf(col string) int {
	i := strings.LastIndex(col, "_")
	if i < 0 {
		return 0
	}
	year, err := strconv.Atoi(col[i+1:])
	if err != nil {
		return 0
	}
	return year
}
