package inspect

import (
	"github.com/recordlens/recordlens/internal/model"
	utilstrings "github.com/recordlens/recordlens/internal/util/strings"
)

// modelContext carries everything the extraction passes need about one
// loaded model: its registry entry, live instance, field policy, merged
// cast map, in-memory values, and the capability table built from the
// source scan.
type modelContext struct {
	entry    *model.Entry
	instance any
	policy   model.FieldPolicy
	casts    map[string]string
	values   map[string]any
	methods  []method
	names    map[string]bool
}

func newModelContext(entry *model.Entry) (*modelContext, error) {
	instance := entry.New()

	methods, err := declaredMethods(entry.SourceDir, entry.Name)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(methods))
	for _, m := range methods {
		names[m.Name] = true
	}

	policy := model.PolicyFor(instance)
	return &modelContext{
		entry:    entry,
		instance: instance,
		policy:   policy,
		casts:    policy.MergedCasts(),
		values:   model.AttributesFor(instance),
		methods:  methods,
		names:    names,
	}, nil
}

// hasGetMutator reports a classic accessor method for the attribute,
// e.g. GetDisplayNameAttribute for display_name.
func (mc *modelContext) hasGetMutator(attr string) bool {
	return mc.names["Get"+utilstrings.ToStudly(attr)+"Attribute"]
}

// hasSetMutator reports a classic mutator method for the attribute.
func (mc *modelContext) hasSetMutator(attr string) bool {
	return mc.names["Set"+utilstrings.ToStudly(attr)+"Attribute"]
}

// hasAttributeMutator reports an attribute-object style mutator: a
// declared method returning model.Attribute whose snake-cased name is
// the attribute key.
func (mc *modelContext) hasAttributeMutator(attr string) bool {
	for _, m := range mc.methods {
		if m.ReturnsAttribute && utilstrings.ToSnakeCase(m.Name) == attr {
			return true
		}
	}
	return false
}

// castFor resolves the reported cast for an attribute name: declared
// accessors and mutators win over the merged cast map.
func (mc *modelContext) castFor(attr string) *string {
	if mc.hasGetMutator(attr) || mc.hasSetMutator(attr) {
		return ptr("Accessor")
	}
	if mc.hasAttributeMutator(attr) {
		return ptr("Attribute")
	}
	if cast, ok := mc.casts[attr]; ok {
		return &cast
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
