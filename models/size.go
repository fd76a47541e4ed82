package models

// SizeCategory is the population bucket of a municipality (porte municipal).
type SizeCategory string

const (
	SizeSmall      SizeCategory = "Pequeno"
	SizeMedium     SizeCategory = "Médio"
	SizeLarge      SizeCategory = "Grande"
	SizeMetropolis SizeCategory = "Metrópole"
)

// SizeCategories lists the buckets in ascending population order.
var SizeCategories = []SizeCategory{SizeSmall, SizeMedium, SizeLarge, SizeMetropolis}

// ClassifySize buckets a population into its porte using the fixed
// breakpoints 20 000 / 100 000 / 500 000. Intervals are half-open, so a
// value sitting exactly on a breakpoint lands in the higher bucket; zero or
// missing population counts as Pequeno.
func ClassifySize(population float64) SizeCategory {
	switch {
	case population >= 500000:
		return SizeMetropolis
	case population >= 100000:
		return SizeLarge
	case population >= 20000:
		return SizeMedium
	default:
		return SizeSmall
	}
}
