package dataset

// Well-known columns of the IBGE municipalities extract. Year-suffixed
// metric families (populacao_estimada_YYYY, pib_per_capita_YYYY, idh_YYYY,
// bioma_YYYY) are discovered at runtime from the header.
const (
	ColMunicipio = "municipio"
	ColEstado    = "estado"
	ColLatitude  = "latitude"
	ColLongitude = "longitude"

	PrefixPopulation = "populacao_estimada"
	PrefixGDP        = "pib_per_capita"
	PrefixHDI        = "idh"
	PrefixBiome      = "bioma"
)

// Table is the in-memory municipalities dataset: a header plus raw string
// cells, exactly as read from the source. All coercion happens downstream,
// per view. A Table is read-only after construction; filtered views share
// the underlying row slices.
type Table struct {
	Columns []string
	Rows    [][]string

	colIndex map[string]int
}

// NewTable builds a table and its column index. Rows are kept as-is.
func NewTable(columns []string, rows [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{Columns: columns, Rows: rows, colIndex: idx}
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.colIndex[name]; ok {
		return i
	}
	return -1
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Value returns the raw cell at (row, column name); empty string when the
// column is absent or the row is short.
func (t *Table) Value(row []string, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// WithRows returns a view over the same columns with a different row set.
func (t *Table) WithRows(rows [][]string) *Table {
	return &Table{Columns: t.Columns, Rows: rows, colIndex: t.colIndex}
}
