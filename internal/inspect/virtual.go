package inspect

import (
	"regexp"

	utilstrings "github.com/recordlens/recordlens/internal/util/strings"
)

var getAccessorRe = regexp.MustCompile(`^Get([A-Z].*)Attribute$`)

// virtualAttributes discovers accessor and mutator backed attributes
// that have no physical column, in method declaration order. Keys that
// collide with a column name are suppressed; the first method to claim
// a key wins.
func virtualAttributes(mc *modelContext, columns map[string]bool) []AttributeRecord {
	seen := make(map[string]bool)
	var records []AttributeRecord

	for _, m := range mc.methods {
		var key, cast string
		if match := getAccessorRe.FindStringSubmatch(m.Name); match != nil {
			key = utilstrings.ToSnakeCase(match[1])
			cast = "Accessor"
		} else if m.ReturnsAttribute {
			key = utilstrings.ToSnakeCase(m.Name)
			cast = "Attribute"
		} else {
			continue
		}

		if columns[key] || seen[key] {
			continue
		}
		seen[key] = true

		records = append(records, AttributeRecord{
			Name:     key,
			Fillable: mc.policy.IsFillable(key),
			Hidden:   mc.policy.IsHidden(key),
			Appended: ptr(mc.policy.IsAppended(key)),
			Cast:     ptr(cast),
		})
	}
	return records
}
