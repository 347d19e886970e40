package file

import (
	"github.com/thisuxhq/pockettypes"
)

// yamlSchema is the YAML document layout.
type yamlSchema struct {
	Collections []*yamlCollection `yaml:"collections"`
}

// yamlCollection keeps an absent field list apart from an empty one:
// a nil Fields omits the key, an empty list is written as [].
type yamlCollection struct {
	ID     string                     `yaml:"id"`
	Name   string                     `yaml:"name"`
	Type   pockettypes.CollectionKind `yaml:"type"`
	System bool                       `yaml:"system,omitempty"`
	Fields *[]*pockettypes.Field      `yaml:"fields,omitempty"`
}

func toYAML(collections []*pockettypes.Collection) *yamlSchema {
	ys := &yamlSchema{Collections: make([]*yamlCollection, 0, len(collections))}
	for _, c := range collections {
		yc := &yamlCollection{ID: c.ID, Name: c.Name, Type: c.Type, System: c.System}
		if c.Fields != nil {
			fields := c.Fields
			yc.Fields = &fields
		}

		ys.Collections = append(ys.Collections, yc)
	}

	return ys
}

// fromYAML converts the document, dropping null entries.
func fromYAML(ys *yamlSchema) []*pockettypes.Collection {
	collections := make([]*pockettypes.Collection, 0, len(ys.Collections))
	for _, yc := range ys.Collections {
		if yc == nil {
			continue
		}

		c := &pockettypes.Collection{ID: yc.ID, Name: yc.Name, Type: yc.Type, System: yc.System}
		if yc.Fields != nil {
			c.Fields = make([]*pockettypes.Field, 0, len(*yc.Fields))
			for _, f := range *yc.Fields {
				if f != nil {
					c.Fields = append(c.Fields, f)
				}
			}
		}

		collections = append(collections, c)
	}

	return collections
}
