// Package model provides the registry and base building blocks for
// active-record style models inspected by recordlens. A model is a plain
// Go struct bound to one relational table; optional capability interfaces
// let it override table naming, connection selection, field policy, and
// in-memory attribute values.
package model

import (
	"reflect"

	"github.com/jinzhu/inflection"

	utilstrings "github.com/recordlens/recordlens/internal/util/strings"
)

// DefaultConnection is used when a model does not implement ConnectionNamer.
const DefaultConnection = "default"

// Tabler overrides the conventional table name for a model.
type Tabler interface {
	TableName() string
}

// ConnectionNamer binds a model to a named database connection.
type ConnectionNamer interface {
	Connection() string
}

// PolicyHolder exposes a model's field configuration.
type PolicyHolder interface {
	Policy() FieldPolicy
}

// AttributeHolder exposes a model's current in-memory attribute values,
// keyed by column name. Used as the default-value fallback when a column
// has no schema-declared default.
type AttributeHolder interface {
	Attributes() map[string]any
}

// Attribute bundles a get and a set transform for a single attribute.
// A model method whose result type is Attribute declares an
// attribute-object style mutator; the method name, snake-cased, is the
// attribute key.
type Attribute struct {
	Get func(value any, attrs map[string]any) any
	Set func(value any, attrs map[string]any) any
}

// Identity returns the fully qualified identity of a model value:
// its package path joined to its type name with a dot.
func Identity(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}

// ShortName returns the bare type name of a model value.
func ShortName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// TableFor resolves the table a model is bound to: the Tabler override
// when present, otherwise the pluralized snake_case of the type name
// (Post -> posts, OrderLine -> order_lines).
func TableFor(m any) string {
	if t, ok := m.(Tabler); ok {
		return t.TableName()
	}
	return inflection.Plural(utilstrings.ToSnakeCase(ShortName(m)))
}

// ConnectionFor resolves the connection a model is bound to.
func ConnectionFor(m any) string {
	if c, ok := m.(ConnectionNamer); ok {
		return c.Connection()
	}
	return DefaultConnection
}

// PolicyFor returns the model's field policy, or an empty policy when the
// model declares none.
func PolicyFor(m any) FieldPolicy {
	if p, ok := m.(PolicyHolder); ok {
		return p.Policy()
	}
	return FieldPolicy{}
}

// AttributesFor returns the model's in-memory attribute values, or nil.
func AttributesFor(m any) map[string]any {
	if a, ok := m.(AttributeHolder); ok {
		return a.Attributes()
	}
	return nil
}
