package inspect

import (
	"fmt"

	"github.com/recordlens/recordlens/internal/schema"
)

// columnAttribute normalizes one raw column descriptor into an attribute
// record using the model's field configuration.
func columnAttribute(col schema.Column, mc *modelContext) AttributeRecord {
	return AttributeRecord{
		Name:     col.Name,
		Type:     ptr(columnType(col)),
		Nullable: ptr(col.Nullable),
		Default:  columnDefault(col, mc),
		Fillable: mc.policy.IsFillable(col.Name),
		Hidden:   mc.policy.IsHidden(col.Name),
		Appended: nil,
		Cast:     mc.castFor(col.Name),
	}
}

// columnType formats a display type: the base name, followed by
// precision,scale for decimal-family columns or the declared length
// otherwise, with an " unsigned" suffix when the column is unsigned.
func columnType(col schema.Column) string {
	s := col.TypeName
	switch {
	case col.Precision != nil && col.Scale != nil:
		s = fmt.Sprintf("%s(%d,%d)", s, *col.Precision, *col.Scale)
	case col.Length != nil:
		s = fmt.Sprintf("%s(%d)", s, *col.Length)
	}
	if col.Unsigned {
		s += " unsigned"
	}
	return s
}

// columnDefault resolves the reported default: auto-incrementing columns
// always report the "increments" marker, then the instance's in-memory
// value, then the schema-declared default.
func columnDefault(col schema.Column, mc *modelContext) any {
	if col.AutoIncrement {
		return "increments"
	}
	if v, ok := mc.values[col.Name]; ok {
		return v
	}
	if col.Default != nil {
		return *col.Default
	}
	return nil
}
