package model

import "github.com/samber/lo"

// FieldPolicy is a model's declared field configuration: mass-assignment
// and visibility sets, explicit casts, legacy date attributes, and
// appended computed attributes. It is passed into the extraction engine
// explicitly rather than read from ambient state.
type FieldPolicy struct {
	Fillable []string          // mass-assignable attribute names
	Hidden   []string          // attributes excluded from serialization
	Visible  []string          // whitelist alternative to Hidden
	Casts    map[string]string // attribute -> cast name
	Dates    []string          // legacy date attributes, cast to "datetime"
	Appends  []string          // computed attributes appended on serialization
}

// IsFillable reports whether the attribute is in the fillable set.
func (p FieldPolicy) IsFillable(attr string) bool {
	return lo.Contains(p.Fillable, attr)
}

// IsHidden reports whether the attribute is hidden from serialization.
// A non-empty Hidden set wins; otherwise a non-empty Visible set hides
// everything absent from it; otherwise nothing is hidden.
func (p FieldPolicy) IsHidden(attr string) bool {
	if len(p.Hidden) > 0 {
		return lo.Contains(p.Hidden, attr)
	}
	if len(p.Visible) > 0 {
		return !lo.Contains(p.Visible, attr)
	}
	return false
}

// IsAppended reports whether the attribute is an appended computed attribute.
func (p FieldPolicy) IsAppended(attr string) bool {
	return lo.Contains(p.Appends, attr)
}

// MergedCasts returns the explicit cast map merged with a synthesized
// "datetime" entry for every legacy date attribute. Explicit casts win.
func (p FieldPolicy) MergedCasts() map[string]string {
	casts := make(map[string]string, len(p.Casts)+len(p.Dates))
	for _, d := range p.Dates {
		casts[d] = "datetime"
	}
	for k, v := range p.Casts {
		casts[k] = v
	}
	return casts
}
