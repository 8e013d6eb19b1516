package schema

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pgColumns = []string{
	"column_name", "udt_name", "character_maximum_length",
	"numeric_precision", "numeric_scale", "is_nullable",
	"column_default", "is_identity",
}

func TestPostgresReaderColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(pgColumns).
		AddRow("id", "int4", nil, 32, 0, "NO", "nextval('posts_id_seq'::regclass)", "NO").
		AddRow("title", "varchar", 255, nil, nil, "NO", nil, "NO").
		AddRow("price", "numeric", nil, 10, 2, "YES", "0.00", "NO").
		AddRow("created_at", "timestamp", nil, nil, nil, "YES", nil, "NO")

	mock.ExpectQuery(regexp.QuoteMeta(postgresColumnsQuery)).
		WithArgs("posts", "public").
		WillReturnRows(rows)

	cols, err := NewPostgresReader(db).Columns(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, cols, 4)

	id := cols[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "int4", id.TypeName)
	assert.True(t, id.AutoIncrement)
	assert.Nil(t, id.Default)
	assert.False(t, id.Nullable)
	// Integer precision is not decimal precision.
	assert.Nil(t, id.Precision)

	title := cols[1]
	require.NotNil(t, title.Length)
	assert.Equal(t, 255, *title.Length)

	price := cols[2]
	require.NotNil(t, price.Precision)
	require.NotNil(t, price.Scale)
	assert.Equal(t, 10, *price.Precision)
	assert.Equal(t, 2, *price.Scale)
	assert.True(t, price.Nullable)
	require.NotNil(t, price.Default)
	assert.Equal(t, "0.00", *price.Default)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReaderIdentityColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(pgColumns).
		AddRow("id", "int8", nil, 64, 0, "NO", nil, "YES")

	mock.ExpectQuery(regexp.QuoteMeta(postgresColumnsQuery)).
		WithArgs("events", "public").
		WillReturnRows(rows)

	cols, err := NewPostgresReader(db).Columns(context.Background(), "events")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.True(t, cols[0].AutoIncrement)
}

func TestPostgresReaderQualifiedTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(pgColumns).
		AddRow("value", "float8", nil, nil, nil, "NO", nil, "NO")

	mock.ExpectQuery(regexp.QuoteMeta(postgresColumnsQuery)).
		WithArgs("metrics", "stats").
		WillReturnRows(rows)

	cols, err := NewPostgresReader(db).Columns(context.Background(), "stats.metrics")
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReaderMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(postgresColumnsQuery)).
		WithArgs("ghosts", "public").
		WillReturnRows(sqlmock.NewRows(pgColumns))

	_, err = NewPostgresReader(db).Columns(context.Background(), "ghosts")
	assert.Error(t, err)
}
