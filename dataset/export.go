package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportFilename is the fixed name offered for the filtered-view download.
const ExportFilename = "dados_filtrados.csv"

// WriteCSV serializes a table back to comma-separated text: same column set,
// same order, header first. Exporting a filtered view and reloading it
// yields an identical table.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		// Short rows are padded so the export stays rectangular.
		if len(row) < len(t.Columns) {
			padded := make([]string, len(t.Columns))
			copy(padded, row)
			row = padded
		}
		if err := cw.Write(row[:len(t.Columns)]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
