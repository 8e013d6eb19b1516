package schema

import (
	"context"
	"fmt"
	"strings"
)

// PostgresReader reads column metadata from information_schema.columns.
type PostgresReader struct {
	db Querier
}

// NewPostgresReader creates a reader over an open PostgreSQL connection.
func NewPostgresReader(db Querier) *PostgresReader {
	return &PostgresReader{db: db}
}

const postgresColumnsQuery = `
SELECT c.column_name,
       c.udt_name,
       c.character_maximum_length,
       c.numeric_precision,
       c.numeric_scale,
       c.is_nullable,
       c.column_default,
       c.is_identity
FROM information_schema.columns c
WHERE c.table_name = $1
  AND c.table_schema = $2
ORDER BY c.ordinal_position`

// Columns lists the columns of a table in ordinal position order. A
// dotted table name is treated as schema-qualified; otherwise the
// "public" schema is assumed.
func (r *PostgresReader) Columns(ctx context.Context, table string) ([]Column, error) {
	tableSchema := "public"
	if name, rest, found := strings.Cut(table, "."); found {
		tableSchema, table = name, rest
	}

	rows, err := r.db.QueryContext(ctx, postgresColumnsQuery, table, tableSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var col Column
		var length, precision, scale *int
		var nullable, identity string
		var defaultExpr *string
		if err := rows.Scan(&col.Name, &col.TypeName, &length, &precision, &scale,
			&nullable, &defaultExpr, &identity); err != nil {
			return nil, fmt.Errorf("failed to scan column row for %s: %w", table, err)
		}

		col.Nullable = nullable == "YES"
		col.Length = length
		// Integer types also report a numeric precision; only the
		// decimal family carries meaningful precision and scale.
		if col.TypeName == "numeric" || col.TypeName == "decimal" {
			col.Precision = precision
			col.Scale = scale
		}
		col.AutoIncrement = identity == "YES" ||
			(defaultExpr != nil && strings.HasPrefix(*defaultExpr, "nextval("))
		if !col.AutoIncrement {
			col.Default = defaultExpr
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
