package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"github.com/patrickmn/go-cache"
)

// Loaded tables are memoized per path for the lifetime of the process; the
// dataset is a static extract, so there is no expiration. Invalidate drops
// a path explicitly (used by the reload endpoint and tests).
var tableCache = cache.New(cache.NoExpiration, cache.NoExpiration)

// Load reads the comma-separated, UTF-8 municipalities extract at path into
// a Table. Repeated calls with the same path return the cached table without
// touching the file again. An unreadable or malformed file is a fatal load
// error for the caller; there is no partial load.
func Load(path string) (*Table, error) {
	if cached, found := tableCache.Get(path); found {
		return cached.(*Table), nil
	}

	t, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded dataset %s: %d rows, %d columns", path, t.NumRows(), len(t.Columns))
	tableCache.Set(path, t, cache.NoExpiration)
	return t, nil
}

// Invalidate drops the cached table for path; the next Load re-reads it.
func Invalidate(path string) {
	tableCache.Delete(path)
}

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ','
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header row", path)
	}

	return NewTable(records[0], records[1:]), nil
}
