// Package schema reads physical column metadata for a table through a
// database connection. Readers return raw column descriptors only; all
// interpretation happens in the inspect package.
package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrDriverUnavailable is returned when the requested database driver is
// not compiled into the host binary or is not supported by a reader.
var ErrDriverUnavailable = errors.New("database driver unavailable")

// Column is the raw descriptor for one physical table column.
type Column struct {
	Name          string
	TypeName      string // base type name, e.g. "varchar", "numeric", "int4"
	Length        *int   // declared length for sized types
	Precision     *int   // numeric precision for decimal-family types
	Scale         *int   // numeric scale for decimal-family types
	Nullable      bool
	Default       *string // schema-declared default expression, nil when absent
	AutoIncrement bool
	Unsigned      bool
}

// Reader lists the columns of a table in schema order.
type Reader interface {
	Columns(ctx context.Context, table string) ([]Column, error)
}

// Querier is the subset of database/sql used by readers, allowing tests
// to substitute a mock connection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Open connects to a database and returns the matching schema reader.
// The driver must be registered with database/sql by the host binary;
// an unregistered or unsupported driver yields ErrDriverUnavailable.
func Open(driver, dsn string) (Reader, error) {
	if !lo.Contains(sql.Drivers(), driver) {
		return nil, fmt.Errorf("%w: %s is not registered", ErrDriverUnavailable, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	switch driver {
	case "pgx", "postgres":
		return NewPostgresReader(db), nil
	case "sqlite3", "sqlite":
		return NewSQLiteReader(db), nil
	default:
		return nil, fmt.Errorf("%w: no schema reader for driver %s", ErrDriverUnavailable, driver)
	}
}

var declaredTypeRe = regexp.MustCompile(`^([a-zA-Z ]+?)\s*(?:\(\s*(\d+)\s*(?:,\s*(\d+)\s*)?\))?\s*$`)

// ParseDeclaredType splits a declared SQL column type such as
// "varchar(255)", "decimal(10,2)" or "int unsigned" into its base name,
// size parameters, and unsigned flag.
func ParseDeclaredType(declared string) (name string, length, precision, scale *int, unsigned bool) {
	s := strings.TrimSpace(declared)
	if stripped, found := strings.CutSuffix(strings.ToLower(s), " unsigned"); found {
		unsigned = true
		s = strings.TrimSpace(s[:len(stripped)])
	}

	m := declaredTypeRe.FindStringSubmatch(s)
	if m == nil {
		return strings.ToLower(s), nil, nil, nil, unsigned
	}

	name = strings.ToLower(strings.TrimSpace(m[1]))
	if m[2] != "" {
		first, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			second, _ := strconv.Atoi(m[3])
			precision, scale = &first, &second
		} else {
			length = &first
		}
	}
	return name, length, precision, scale, unsigned
}
