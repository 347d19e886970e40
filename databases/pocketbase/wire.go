package pocketbase

import (
	"encoding/json"
	"fmt"

	"github.com/thisuxhq/pockettypes"
)

// wireCollection is the JSON shape of a collection as served by the
// collections API and written by the admin UI export.
type wireCollection struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	System bool        `json:"system"`
	Fields []wireField `json:"fields"`

	// Schema is the field list of servers before v0.23.
	Schema []wireField `json:"schema"`
}

// wireField accepts both layouts: settings on the field itself (current)
// and settings nested under options (legacy).
type wireField struct {
	Name         string                `json:"name"`
	Type         pockettypes.FieldType `json:"type"`
	Required     bool                  `json:"required"`
	System       bool                  `json:"system"`
	MaxSelect    int                   `json:"maxSelect"`
	CollectionID string                `json:"collectionId"`
	Options      *wireOptions          `json:"options"`
}

type wireOptions struct {
	MaxSelect    int    `json:"maxSelect"`
	CollectionID string `json:"collectionId"`
}

// ParseCollections decodes a JSON array of collections.
func ParseCollections(data []byte) ([]*pockettypes.Collection, error) {
	var wire []wireCollection
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("pocketbase: decoding collections: %w", err)
	}

	return convertCollections(wire), nil
}

func convertCollections(wire []wireCollection) []*pockettypes.Collection {
	collections := make([]*pockettypes.Collection, 0, len(wire))
	for i := range wire {
		collections = append(collections, wire[i].convert())
	}

	return collections
}

func (w *wireCollection) convert() *pockettypes.Collection {
	c := &pockettypes.Collection{
		ID:     w.ID,
		Name:   w.Name,
		Type:   pockettypes.CollectionKind(w.Type),
		System: w.System,
	}

	fields := w.Fields
	if fields == nil {
		fields = w.Schema
	}

	// A nil list stays nil: the emitter reports it as missing.
	if fields != nil {
		c.Fields = make([]*pockettypes.Field, 0, len(fields))
		for i := range fields {
			c.Fields = append(c.Fields, fields[i].convert())
		}
	}

	return c
}

func (w *wireField) convert() *pockettypes.Field {
	f := &pockettypes.Field{
		Name:     w.Name,
		Type:     w.Type,
		Required: w.Required,
		System:   w.System,
		Options: pockettypes.FieldOptions{
			MaxSelect:    w.MaxSelect,
			CollectionID: w.CollectionID,
		},
	}

	if w.Options != nil {
		if w.Options.MaxSelect != 0 {
			f.Options.MaxSelect = w.Options.MaxSelect
		}

		if w.Options.CollectionID != "" {
			f.Options.CollectionID = w.Options.CollectionID
		}
	}

	return f
}
