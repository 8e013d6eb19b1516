package model

// Relation is a relationship descriptor returned by a model's
// relationship factory methods. Related returns an instance of the
// target model, or nil when the target is only known at runtime
// (MorphTo).
type Relation interface {
	Related() any
}

// HasOne is a one-to-one relationship descriptor.
type HasOne struct{ related any }

// HasMany is a one-to-many relationship descriptor.
type HasMany struct{ related any }

// HasOneThrough reaches a single related model through an intermediate.
type HasOneThrough struct {
	related any
	through any
}

// HasManyThrough reaches many related models through an intermediate.
type HasManyThrough struct {
	related any
	through any
}

// BelongsTo is the inverse of HasOne / HasMany.
type BelongsTo struct{ related any }

// BelongsToMany is a many-to-many relationship descriptor.
type BelongsToMany struct{ related any }

// MorphOne is a polymorphic one-to-one relationship descriptor.
type MorphOne struct {
	related any
	name    string
}

// MorphMany is a polymorphic one-to-many relationship descriptor.
type MorphMany struct {
	related any
	name    string
}

// MorphTo is the inverse of a polymorphic relationship. Its target model
// is carried by the morph columns at runtime, so Related returns nil.
type MorphTo struct{}

// MorphToMany is a polymorphic many-to-many relationship descriptor.
type MorphToMany struct {
	related any
	name    string
}

// MorphedByMany is the inverse of MorphToMany.
type MorphedByMany struct {
	related any
	name    string
}

func (r *HasOne) Related() any         { return r.related }
func (r *HasMany) Related() any        { return r.related }
func (r *HasOneThrough) Related() any  { return r.related }
func (r *HasManyThrough) Related() any { return r.related }
func (r *BelongsTo) Related() any      { return r.related }
func (r *BelongsToMany) Related() any  { return r.related }
func (r *MorphOne) Related() any       { return r.related }
func (r *MorphMany) Related() any      { return r.related }
func (r *MorphTo) Related() any        { return nil }
func (r *MorphToMany) Related() any    { return r.related }
func (r *MorphedByMany) Related() any  { return r.related }

// Through returns the intermediate model of a through relationship.
func (r *HasOneThrough) Through() any  { return r.through }
func (r *HasManyThrough) Through() any { return r.through }

// MorphName returns the morph map name of a polymorphic relationship.
func (r *MorphOne) MorphName() string      { return r.name }
func (r *MorphMany) MorphName() string     { return r.name }
func (r *MorphToMany) MorphName() string   { return r.name }
func (r *MorphedByMany) MorphName() string { return r.name }

// Base is embedded by model structs to provide the relationship factory
// methods. The factories only build descriptors; no queries are issued.
type Base struct{}

// HasOne declares a one-to-one relationship to the related model.
func (Base) HasOne(related any) *HasOne { return &HasOne{related: related} }

// HasMany declares a one-to-many relationship to the related model.
func (Base) HasMany(related any) *HasMany { return &HasMany{related: related} }

// HasOneThrough declares a one-to-one relationship reached through an
// intermediate model.
func (Base) HasOneThrough(related, through any) *HasOneThrough {
	return &HasOneThrough{related: related, through: through}
}

// HasManyThrough declares a one-to-many relationship reached through an
// intermediate model.
func (Base) HasManyThrough(related, through any) *HasManyThrough {
	return &HasManyThrough{related: related, through: through}
}

// BelongsTo declares the inverse side of a one-to-one or one-to-many
// relationship.
func (Base) BelongsTo(related any) *BelongsTo { return &BelongsTo{related: related} }

// BelongsToMany declares a many-to-many relationship to the related model.
func (Base) BelongsToMany(related any) *BelongsToMany {
	return &BelongsToMany{related: related}
}

// MorphOne declares a polymorphic one-to-one relationship.
func (Base) MorphOne(related any, name string) *MorphOne {
	return &MorphOne{related: related, name: name}
}

// MorphMany declares a polymorphic one-to-many relationship.
func (Base) MorphMany(related any, name string) *MorphMany {
	return &MorphMany{related: related, name: name}
}

// MorphTo declares the inverse side of a polymorphic relationship.
func (Base) MorphTo() *MorphTo { return &MorphTo{} }

// MorphToMany declares a polymorphic many-to-many relationship.
func (Base) MorphToMany(related any, name string) *MorphToMany {
	return &MorphToMany{related: related, name: name}
}

// MorphedByMany declares the inverse of a polymorphic many-to-many
// relationship.
func (Base) MorphedByMany(related any, name string) *MorphedByMany {
	return &MorphedByMany{related: related, name: name}
}
