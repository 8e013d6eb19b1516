package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordlens/recordlens/internal/schema"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestColumnType(t *testing.T) {
	tests := []struct {
		name string
		col  schema.Column
		want string
	}{
		{"bare", schema.Column{TypeName: "int4"}, "int4"},
		{"length", schema.Column{TypeName: "varchar", Length: intp(255)}, "varchar(255)"},
		{"decimal", schema.Column{TypeName: "numeric", Precision: intp(10), Scale: intp(2)}, "numeric(10,2)"},
		{"unsigned bare", schema.Column{TypeName: "bigint", Unsigned: true}, "bigint unsigned"},
		{"unsigned decimal", schema.Column{TypeName: "decimal", Precision: intp(8), Scale: intp(3), Unsigned: true}, "decimal(8,3) unsigned"},
		{"unsigned length", schema.Column{TypeName: "int", Length: intp(11), Unsigned: true}, "int(11) unsigned"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnType(tt.col))
		})
	}
}

func TestColumnDefault(t *testing.T) {
	mc, err := newModelContext(fixtureEntry(t, "Post"))
	require.NoError(t, err)

	// Auto-increment wins over any declared default.
	got := columnDefault(schema.Column{Name: "id", AutoIncrement: true, Default: strp("7")}, mc)
	assert.Equal(t, "increments", got)

	// In-memory instance value beats the schema default.
	got = columnDefault(schema.Column{Name: "status", Default: strp("'published'")}, mc)
	assert.Equal(t, "draft", got)

	// Schema default as fallback.
	got = columnDefault(schema.Column{Name: "likes", Default: strp("0")}, mc)
	assert.Equal(t, "0", got)

	// Nothing declared anywhere.
	assert.Nil(t, columnDefault(schema.Column{Name: "body"}, mc))
}

func TestColumnAttributeCasts(t *testing.T) {
	mc, err := newModelContext(fixtureEntry(t, "Post"))
	require.NoError(t, err)

	// Declared get-mutator wins.
	title := columnAttribute(schema.Column{Name: "title", TypeName: "varchar", Length: intp(255)}, mc)
	require.NotNil(t, title.Cast)
	assert.Equal(t, "Accessor", *title.Cast)

	// Legacy date attribute synthesizes a datetime cast.
	published := columnAttribute(schema.Column{Name: "published_at", TypeName: "timestamp", Nullable: true}, mc)
	require.NotNil(t, published.Cast)
	assert.Equal(t, "datetime", *published.Cast)
	assert.True(t, published.Fillable)

	// Explicit cast map entry.
	settings := columnAttribute(schema.Column{Name: "settings", TypeName: "jsonb"}, mc)
	require.NotNil(t, settings.Cast)
	assert.Equal(t, "json", *settings.Cast)

	// No cast at all.
	body := columnAttribute(schema.Column{Name: "body", TypeName: "text"}, mc)
	assert.Nil(t, body.Cast)
}

func TestColumnAttributeFlags(t *testing.T) {
	mc, err := newModelContext(fixtureEntry(t, "Post"))
	require.NoError(t, err)

	secret := columnAttribute(schema.Column{Name: "secret_token", TypeName: "varchar"}, mc)
	assert.True(t, secret.Hidden)
	assert.False(t, secret.Fillable)

	// Column-backed attributes never report an appended flag.
	assert.Nil(t, secret.Appended)

	body := columnAttribute(schema.Column{Name: "body", TypeName: "text", Nullable: true}, mc)
	assert.True(t, body.Fillable)
	assert.False(t, body.Hidden)
	require.NotNil(t, body.Nullable)
	assert.True(t, *body.Nullable)
}
