package schema

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sqliteColumns = []string{"name", "type", "notnull", "dflt_value", "pk"}

func TestSQLiteReaderColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(sqliteColumns).
		AddRow("id", "INTEGER", 1, nil, 1).
		AddRow("title", "varchar(255)", 1, nil, 0).
		AddRow("price", "decimal(10,2)", 0, "0", 0).
		AddRow("views", "int unsigned", 1, "0", 0)

	mock.ExpectQuery(regexp.QuoteMeta(sqliteColumnsQuery)).
		WithArgs("posts").
		WillReturnRows(rows)

	cols, err := NewSQLiteReader(db).Columns(context.Background(), "posts")
	require.NoError(t, err)
	require.Len(t, cols, 4)

	id := cols[0]
	assert.Equal(t, "integer", id.TypeName)
	assert.True(t, id.AutoIncrement)
	assert.Nil(t, id.Default)
	assert.False(t, id.Nullable)

	title := cols[1]
	assert.Equal(t, "varchar", title.TypeName)
	require.NotNil(t, title.Length)
	assert.Equal(t, 255, *title.Length)

	price := cols[2]
	assert.Equal(t, "decimal", price.TypeName)
	require.NotNil(t, price.Precision)
	assert.Equal(t, 10, *price.Precision)
	require.NotNil(t, price.Scale)
	assert.Equal(t, 2, *price.Scale)
	assert.True(t, price.Nullable)
	require.NotNil(t, price.Default)
	assert.Equal(t, "0", *price.Default)

	views := cols[3]
	assert.Equal(t, "int", views.TypeName)
	assert.True(t, views.Unsigned)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteReaderMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(sqliteColumnsQuery)).
		WithArgs("ghosts").
		WillReturnRows(sqlmock.NewRows(sqliteColumns))

	_, err = NewSQLiteReader(db).Columns(context.Background(), "ghosts")
	assert.Error(t, err)
}
