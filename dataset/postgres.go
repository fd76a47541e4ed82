package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"regexp"

	_ "github.com/lib/pq"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// LoadPostgres reads the full municipalities table from PostgreSQL into a
// Table, for deployments where the extract is kept in a warehouse instead of
// a CSV file. All cells come back as text; NULL becomes the empty string so
// downstream coercion treats it as missing, same as an empty CSV cell.
func LoadPostgres(ctx context.Context, db *sql.DB, table string) (*Table, error) {
	if !identPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid dataset table name: %q", table)
	}

	var exists bool
	err := db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT FROM information_schema.tables
            WHERE table_name = $1
        )`, table).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check dataset table: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("dataset table %s does not exist", table)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("query dataset table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read dataset columns: %w", err)
	}

	var data [][]string
	cells := make([]sql.NullString, len(columns))
	scan := make([]interface{}, len(columns))
	for i := range cells {
		scan[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan dataset row: %w", err)
		}
		row := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				row[i] = c.String
			}
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dataset rows: %w", err)
	}

	log.Printf("Loaded dataset from table %s: %d rows, %d columns", table, len(data), len(columns))
	return NewTable(columns, data), nil
}
