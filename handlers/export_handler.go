package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Joaovitor2710/dashboard-ibge/dataset"
)

// ExportFiltered streams the current filtered view as a CSV attachment:
// same column set, same order, fixed filename.
func ExportFiltered(w http.ResponseWriter, r *http.Request) {
	p := parseViewParams(r)
	view := p.filteredView()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", dataset.ExportFilename))

	if err := dataset.WriteCSV(w, view); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("ExportFiltered: %v", err)
		return
	}
	log.Printf("Exported %d filtered rows", view.NumRows())
}
