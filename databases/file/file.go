// Package file provides a pockettypes Source backed by an exported schema
// file, so declarations can be generated without a running server.
//
// Two formats are read:
//   - JSON: the array written by the PocketBase admin UI "Export collections"
//     (current and pre-v0.23 field layouts).
//   - YAML: the document written by WriteSchema.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/databases/pocketbase"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a schema file.
type Format string

// Schema file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("file: unknown schema format")

// ErrInvalidConfig is returned when an invalid configuration is provided.
var ErrInvalidConfig = errors.New("file: expected *pockettypes.FileConfig")

//nolint:gochecknoinits // Source self-registration pattern
func init() {
	pockettypes.RegisterSource(pockettypes.SourceFile, func(cfg any) (pockettypes.Source, error) {
		fileCfg, ok := cfg.(*pockettypes.FileConfig)
		if !ok {
			return nil, fmt.Errorf("%w, got %T", ErrInvalidConfig, cfg)
		}

		return New(fileCfg.Path), nil
	})
}

// Source implements pockettypes.Source for a schema file.
type Source struct {
	path string
}

// New creates a source reading path.
func New(path string) *Source {
	return &Source{path: path}
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return pockettypes.SourceFile
}

// Collections reads and decodes the schema file.
func (s *Source) Collections(_ context.Context) ([]*pockettypes.Collection, error) {
	return LoadSchema(s.path, "")
}

// LoadSchema loads collections from a schema file.
// The path can be absolute or relative to baseDir.
func LoadSchema(path, baseDir string) ([]*pockettypes.Collection, error) {
	if !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	collections, err := ParseSchema(data, FormatFor(cleanPath))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cleanPath, err)
	}

	return collections, nil
}

// FormatFor picks a format from the file extension. Anything that is not
// .yaml or .yml is read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseSchema decodes schema data in the given format.
func ParseSchema(data []byte, format Format) ([]*pockettypes.Collection, error) {
	var (
		collections []*pockettypes.Collection
		err         error
	)

	switch format {
	case FormatJSON:
		collections, err = pocketbase.ParseCollections(data)
	case FormatYAML:
		var ys yamlSchema
		err = yaml.Unmarshal(data, &ys)
		collections = fromYAML(&ys)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, err
	}

	if len(collections) == 0 {
		return nil, pockettypes.ErrNoSchema
	}

	return collections, nil
}

// WriteSchema writes collections to w in the given format.
func WriteSchema(w io.Writer, collections []*pockettypes.Collection, format Format) (err error) {
	switch format {
	case FormatJSON:
		return writeJSON(w, collections)
	case FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if _, err := fmt.Fprintf(w, "# Schema snapshot written by %s.\n", pockettypes.Generator); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() {
		if cerr := encoder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return encoder.Encode(toYAML(collections))
}

// Compile-time interface checks.
var _ pockettypes.Source = (*Source)(nil)
