package typescript

import (
	"bytes"
	"fmt"
	"time"

	"github.com/thisuxhq/pockettypes"
	"go.uber.org/zap"
)

// BaseInterface is the name of the shape every record interface extends.
const BaseInterface = "Base"

// ExpandSuffix is appended to an interface name for its expand shape.
const ExpandSuffix = "Expand"

// timestampLayout matches an ISO-8601 UTC timestamp with milliseconds.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Member is one property of an emitted interface.
type Member struct {
	Name     string
	Type     string
	Optional bool
}

// Interface is one emitted interface declaration.
type Interface struct {
	Name    string
	Extends string
	Members []Member
}

// Declaration groups a collection's interface with its expand shape.
type Declaration struct {
	// Collection is the source collection name.
	Collection string

	Interface Interface

	// Expand is nil when the collection has no resolvable relations.
	Expand *Interface
}

// Document is the full set of declarations for one schema snapshot.
type Document struct {
	Declarations []Declaration

	// Skipped holds the names of collections without a field list.
	Skipped []string
}

// Emitter builds declarations from collections.
type Emitter struct {
	logger *zap.Logger
}

// NewEmitter creates an Emitter. A nil logger discards diagnostics.
func NewEmitter(logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Emitter{logger: logger}
}

// Emit builds the document for collections, preserving their order.
// View collections are dropped before names are resolved.
func (e *Emitter) Emit(collections []*pockettypes.Collection) *Document {
	live := make([]*pockettypes.Collection, 0, len(collections))
	for _, c := range collections {
		if c.IsView() {
			e.logger.Debug("Skipping view collection", zap.String("collection", c.Name))
			continue
		}

		live = append(live, c)
	}

	names := NewNameTable(live)
	doc := &Document{}

	for _, c := range live {
		e.logger.Debug("Processing collection", zap.String("collection", c.Name))

		if c.Fields == nil {
			e.logger.Warn("Skipping collection without fields", zap.String("collection", c.Name))
			doc.Skipped = append(doc.Skipped, c.Name)

			continue
		}

		doc.Declarations = append(doc.Declarations, e.declare(c, names))
	}

	return doc
}

func (e *Emitter) declare(c *pockettypes.Collection, names NameTable) Declaration {
	name := PascalCase(c.Name)
	if name == "" {
		e.logger.Warn("Collection name has no identifier characters",
			zap.String("collection", c.Name), zap.String("id", c.ID))
	}

	decl := Declaration{
		Collection: c.Name,
		Interface:  Interface{Name: name, Extends: BaseInterface},
	}

	var relations []Member

	for _, f := range c.Fields {
		if f == nil || pockettypes.IsBaseField(f.Name) {
			continue
		}

		decl.Interface.Members = append(decl.Interface.Members, Member{
			Name: f.Name,
			Type: MapFieldType(f, names),
		})

		if f.Type != pockettypes.FieldRelation {
			continue
		}

		// Computed separately from the member above: expand entries are
		// always optional and only exist for resolved targets.
		typ, ok := RelationType(f, names)
		if !ok {
			e.logger.Debug("Unresolved relation target",
				zap.String("collection", c.Name),
				zap.String("field", f.Name),
				zap.String("target", f.Options.CollectionID))

			continue
		}

		relations = append(relations, Member{Name: f.Name, Type: typ, Optional: true})
	}

	if len(relations) > 0 {
		decl.Expand = &Interface{Name: name + ExpandSuffix, Members: relations}
	}

	return decl
}

// Names returns the declared type names in output order, expand shapes
// following their interface.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Declarations))
	for _, decl := range d.Declarations {
		names = append(names, decl.Interface.Name)
		if decl.Expand != nil {
			names = append(names, decl.Expand.Name)
		}
	}

	return names
}

// Render returns the document as TypeScript source.
func (d *Document) Render(generatedAt time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Auto-generated by %s\n", pockettypes.Generator)
	fmt.Fprintf(&buf, "// Generated on %s\n\n", generatedAt.UTC().Format(timestampLayout))

	writeInterface(&buf, baseShape())

	for _, decl := range d.Declarations {
		writeInterface(&buf, decl.Interface)

		if decl.Expand != nil {
			writeInterface(&buf, *decl.Expand)
		}
	}

	return buf.Bytes()
}

func baseShape() Interface {
	members := make([]Member, 0, len(pockettypes.BaseFieldNames))
	for _, name := range pockettypes.BaseFieldNames {
		members = append(members, Member{Name: name, Type: typeString})
	}

	return Interface{Name: BaseInterface, Members: members}
}

func writeInterface(buf *bytes.Buffer, iface Interface) {
	buf.WriteString("export interface ")
	buf.WriteString(iface.Name)

	if iface.Extends != "" {
		buf.WriteString(" extends ")
		buf.WriteString(iface.Extends)
	}

	buf.WriteString(" {\n")

	for _, m := range iface.Members {
		buf.WriteString("  ")
		buf.WriteString(m.Name)

		if m.Optional {
			buf.WriteByte('?')
		}

		buf.WriteString(": ")
		buf.WriteString(m.Type)
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n\n")
}
