// Package typescript generates TypeScript interface declarations from
// PocketBase collection schemas.
//
// One file is produced. It starts with a banner and a shared Base interface
// holding the fields every record carries, followed by one interface per
// collection:
//
//	export interface Posts extends Base {
//	  title: string;
//	  views: number | null;
//	  tags: Tags[];
//	}
//
//	export interface PostsExpand {
//	  tags?: Tags[];
//	}
//
// The Expand interface describes a record fetched with its relations
// expanded and is only emitted when at least one relation resolves.
package typescript

import (
	"time"

	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/language"
)

// TypeScriptLanguage implements language.Language for TypeScript.
type TypeScriptLanguage struct{}

// New creates a new TypeScript language generator.
func New() *TypeScriptLanguage {
	return &TypeScriptLanguage{}
}

// Name returns "typescript".
func (l *TypeScriptLanguage) Name() string {
	return pockettypes.LangTypeScript
}

// DefaultFileName returns "pb.types.ts".
func (l *TypeScriptLanguage) DefaultFileName() string {
	return pockettypes.DefaultOutput
}

// Generate renders every collection into a single declaration file.
func (l *TypeScriptLanguage) Generate(ctx *language.GenerateContext) (*language.Output, error) {
	fileName := ctx.FileName
	if fileName == "" {
		fileName = l.DefaultFileName()
	}

	generatedAt := ctx.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	doc := NewEmitter(ctx.Logger).Emit(ctx.Collections)

	return &language.Output{
		Files:    map[string][]byte{fileName: doc.Render(generatedAt)},
		Declared: doc.Names(),
		Skipped:  doc.Skipped,
	}, nil
}

//nolint:gochecknoinits // Registration pattern requires init.
func init() {
	language.Register(New())
}
