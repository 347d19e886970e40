package pockettypes

import "context"

// Source is implemented by anything that can supply a schema snapshot.
type Source interface {
	// Name returns the source identifier (e.g., "pocketbase", "file").
	Name() string

	// Collections returns every collection in schema order.
	// The snapshot is complete; streaming or partial results are not supported.
	Collections(ctx context.Context) ([]*Collection, error)
}

// CollectionKind is the PocketBase collection type.
type CollectionKind string

// Collection kinds.
const (
	KindBase CollectionKind = "base"
	KindAuth CollectionKind = "auth"
	KindView CollectionKind = "view"
)

// Collection describes one record type.
type Collection struct {
	ID     string         `json:"id"               yaml:"id"`
	Name   string         `json:"name"             yaml:"name"`
	Type   CollectionKind `json:"type"             yaml:"type"`
	System bool           `json:"system,omitempty" yaml:"system,omitempty"`

	// Fields is nil when the schema carried no field list at all.
	Fields []*Field `json:"fields" yaml:"fields"`
}

// IsView reports whether the collection is a read-only projection.
func (c *Collection) IsView() bool {
	return c.Type == KindView
}

// FieldNames returns the field names in schema order.
func (c *Collection) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f != nil {
			names = append(names, f.Name)
		}
	}

	return names
}

// Field describes one attribute of a collection.
type Field struct {
	Name     string       `json:"name"               yaml:"name"`
	Type     FieldType    `json:"type"               yaml:"type"`
	Required bool         `json:"required"           yaml:"required"`
	System   bool         `json:"system,omitempty"   yaml:"system,omitempty"`
	Options  FieldOptions `json:"options,omitzero"   yaml:"options,omitempty"`
}

// FieldOptions holds the type-specific settings used during generation.
type FieldOptions struct {
	// MaxSelect is the maximum number of values; 0 means unset.
	MaxSelect int `json:"maxSelect,omitempty" yaml:"max_select,omitempty"`

	// CollectionID is the relation target.
	CollectionID string `json:"collectionId,omitempty" yaml:"collection_id,omitempty"`
}

// IsBaseField reports whether name is one of the fields every record carries.
func IsBaseField(name string) bool {
	for _, n := range BaseFieldNames {
		if n == name {
			return true
		}
	}

	return false
}
