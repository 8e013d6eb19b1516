package schema

import (
	"context"
	"fmt"
	"strings"
)

// SQLiteReader reads column metadata through the table_info pragma.
type SQLiteReader struct {
	db Querier
}

// NewSQLiteReader creates a reader over an open SQLite connection.
func NewSQLiteReader(db Querier) *SQLiteReader {
	return &SQLiteReader{db: db}
}

const sqliteColumnsQuery = `SELECT name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`

// Columns lists the columns of a table in declaration order. SQLite
// reports the full declared type ("varchar(255)", "decimal(10,2)"),
// which is split into base name and size parameters here.
func (r *SQLiteReader) Columns(ctx context.Context, table string) ([]Column, error) {
	if _, rest, found := strings.Cut(table, "."); found {
		table = rest
	}

	rows, err := r.db.QueryContext(ctx, sqliteColumnsQuery, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var name, declared string
		var notNull, primaryKey int
		var defaultExpr *string
		if err := rows.Scan(&name, &declared, &notNull, &defaultExpr, &primaryKey); err != nil {
			return nil, fmt.Errorf("failed to scan column row for %s: %w", table, err)
		}

		col := Column{
			Name:     name,
			Nullable: notNull == 0,
			Default:  defaultExpr,
		}
		col.TypeName, col.Length, col.Precision, col.Scale, col.Unsigned = ParseDeclaredType(declared)

		// An INTEGER primary key aliases the rowid and auto-increments.
		if primaryKey > 0 && col.TypeName == "integer" {
			col.AutoIncrement = true
			col.Default = nil
		}

		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read columns for %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %s has no columns or does not exist", table)
	}
	return columns, nil
}
