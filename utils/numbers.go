package utils

import (
	"strconv"
	"strings"
)

// ParseFloat coerces a raw dataset cell to a float64. The IBGE extracts mix
// plain numbers with empty cells and placeholder text ("-", "..."), so any
// cell that does not parse reports ok=false instead of an error.
func ParseFloat(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// ParseFloatOrZero coerces a cell to a float64, treating anything
// unparseable as 0. Population threshold comparisons rely on this.
func ParseFloatOrZero(raw string) float64 {
	val, _ := ParseFloat(raw)
	return val
}

// ParseIntOrDefault parses an integer query parameter, falling back to def
// when the value is missing or malformed.
func ParseIntOrDefault(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
