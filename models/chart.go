package models

// Chart payload rows returned by the API. The frontend hands these straight
// to Plotly / deck.gl; field names mirror the dataset's Portuguese columns.

// RankedMunicipality is one bar of the top-N population ranking.
type RankedMunicipality struct {
	Municipio string  `json:"municipio"`
	Estado    string  `json:"estado"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
}

// GroupAggregate is one group of a group-by sum/mean (per state or biome).
type GroupAggregate struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// ScatterPoint is one municipality on the population x GDP scatter.
type ScatterPoint struct {
	Municipio    string       `json:"municipio"`
	Estado       string       `json:"estado"`
	Population   float64      `json:"population"`
	GDPPerCapita float64      `json:"gdp_per_capita"`
	Porte        SizeCategory `json:"porte"`
}

// SizeSeries carries the raw values of one porte bucket, for box and violin
// plots rendered client-side.
type SizeSeries struct {
	Porte  SizeCategory `json:"porte"`
	Values []float64    `json:"values"`
}

// StateSeries carries the raw values of one state, ordered by the caller.
type StateSeries struct {
	Estado string    `json:"estado"`
	Mean   float64   `json:"mean"`
	Values []float64 `json:"values"`
}

// ExtremeRow is one municipality of the best/worst comparison chart.
type ExtremeRow struct {
	Municipio string  `json:"municipio"`
	Estado    string  `json:"estado"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Categoria string  `json:"categoria"`
}

// MapPoint is one municipality on the 2D map.
type MapPoint struct {
	Municipio  string  `json:"municipio"`
	Estado     string  `json:"estado"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population float64 `json:"population"`
	HDI        float64 `json:"hdi"`
}

// MapColumn is one extruded column of the 3D map; Elevation is normalized
// against the maximum population of the filtered view.
type MapColumn struct {
	Municipio  string  `json:"municipio"`
	Estado     string  `json:"estado"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population float64 `json:"population"`
	Elevation  float64 `json:"elevation"`
}

// ViewState is the initial camera for the 3D map, centered on the filtered
// rows.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}
