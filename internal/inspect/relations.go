package inspect

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/recordlens/recordlens/internal/model"
)

// relationVocabulary is the closed set of relationship factory method
// names recognized by the classifier.
var relationVocabulary = []string{
	"HasMany",
	"HasManyThrough",
	"HasOneThrough",
	"BelongsToMany",
	"HasOne",
	"BelongsTo",
	"MorphOne",
	"MorphTo",
	"MorphMany",
	"MorphToMany",
	"MorphedByMany",
}

// classifyRelation tests whether a method's source contains a self-call
// to one of the relationship factories. This is a textual heuristic: the
// literal substring "<recv>.<Factory>(" anywhere in the declaration
// qualifies, including inside comments or string literals, and indirect
// calls through helpers are missed. Preserved as-is for compatibility.
func classifyRelation(m method) bool {
	if m.Receiver == "" {
		return false
	}
	for _, factory := range relationVocabulary {
		if strings.Contains(m.Source, m.Receiver+"."+factory+"(") {
			return true
		}
	}
	return false
}

// relationRecords invokes every method passing the textual pre-filter
// and builds a record from the returned descriptor. The pre-filter is
// trusted: a classified method that cannot be invoked or returns
// something other than a relationship descriptor aborts the run.
func relationRecords(mc *modelContext) ([]RelationRecord, error) {
	instance := reflect.ValueOf(mc.instance)

	var records []RelationRecord
	for _, m := range mc.methods {
		if !classifyRelation(m) {
			continue
		}

		fn := instance.MethodByName(m.Name)
		if !fn.IsValid() {
			return nil, fmt.Errorf("relationship method %s.%s is not invokable", mc.entry.Name, m.Name)
		}
		if fn.Type().NumIn() != 0 || fn.Type().NumOut() == 0 {
			return nil, fmt.Errorf("relationship method %s.%s must take no arguments and return a descriptor", mc.entry.Name, m.Name)
		}

		rel, ok := fn.Call(nil)[0].Interface().(model.Relation)
		if !ok {
			return nil, fmt.Errorf("relationship method %s.%s did not return a relationship descriptor", mc.entry.Name, m.Name)
		}

		related := mc.entry.Qualified
		if target := rel.Related(); target != nil {
			related = model.Identity(target)
		}

		records = append(records, RelationRecord{
			Name:    m.Name,
			Kind:    descriptorKind(rel),
			Related: related,
		})
	}
	return records, nil
}

// descriptorKind is the short name of the descriptor's runtime type.
func descriptorKind(rel model.Relation) string {
	t := reflect.TypeOf(rel)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
