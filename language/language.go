// Package language provides interfaces for generating type declarations from
// collection schemas.
//
// Each target language implements the Language interface to turn a schema
// snapshot into source files.
package language

import (
	"time"

	"github.com/thisuxhq/pockettypes"
	"go.uber.org/zap"
)

// Language represents a target language for code generation.
type Language interface {
	// Name returns the language identifier (e.g., "typescript").
	Name() string

	// DefaultFileName returns the output file name used when none is configured.
	DefaultFileName() string

	// Generate produces source files from the given context.
	Generate(ctx *GenerateContext) (*Output, error)
}

// GenerateContext provides information needed for code generation.
type GenerateContext struct {
	// Collections is the schema snapshot in source order.
	Collections []*pockettypes.Collection

	// FileName is the name of the file to produce.
	// If empty, the language's DefaultFileName is used.
	FileName string

	// GeneratedAt is stamped into the banner. Zero means time.Now.
	GeneratedAt time.Time

	// Logger receives diagnostics. May be nil.
	Logger *zap.Logger
}

// Output is the result of a Generate call.
type Output struct {
	// Files maps file name to content.
	Files map[string][]byte

	// Declared lists the emitted type names in output order.
	Declared []string

	// Skipped lists collections that produced no declaration.
	Skipped []string
}

// Registration for language discovery.
var languages = make(map[string]Language)

// Register registers a language by name.
func Register(lang Language) {
	languages[lang.Name()] = lang
}

// Get returns a language by name, or nil if not registered.
func Get(name string) Language { //nolint:ireturn
	return languages[name]
}

// RegisteredLanguages returns the names of all registered languages.
func RegisteredLanguages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}

	return names
}
