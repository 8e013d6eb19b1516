// Package inspect implements the metadata extraction engine: it merges
// physical column metadata with virtual attributes discovered from model
// source, classifies relationship factory methods, and assembles a
// stable, serializable model description.
package inspect

// AttributeRecord describes one persisted column or one virtual
// attribute of a model. Pointer fields are nil when the value does not
// apply to the attribute's kind.
type AttributeRecord struct {
	Name     string  `json:"name"`
	Type     *string `json:"type"`
	Nullable *bool   `json:"nullable"`
	Default  any     `json:"default"`
	Fillable bool    `json:"fillable"`
	Hidden   bool    `json:"hidden"`
	Appended *bool   `json:"appended"`
	Cast     *string `json:"cast"`
}

// RelationRecord describes one declared relationship: the declaring
// method, the descriptor kind, and the related model's identity.
type RelationRecord struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Related string `json:"related"`
}

// ModelDescription is the sole output artifact of an inspection run.
// Attributes list columns first in schema order, then virtual attributes
// in method declaration order; relations preserve declaration order.
type ModelDescription struct {
	Class      string            `json:"class"`
	Connection string            `json:"connection"`
	Table      string            `json:"table"`
	Attributes []AttributeRecord `json:"attributes"`
	Relations  []RelationRecord  `json:"relations"`
}
