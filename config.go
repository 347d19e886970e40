package pockettypes

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the .pockettypes.yaml configuration file.
type Config struct {
	// PocketBase holds the connection settings for the schema server.
	PocketBase *PocketBaseConfig `yaml:"pocketbase,omitempty"`

	// Generate config for code generation
	Generate GenerateConfig `yaml:"generate,omitempty"`
}

// PocketBaseConfig holds PocketBase connection settings.
type PocketBaseConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// Token is a pre-issued superuser token. When set, password
	// authentication is skipped.
	Token string `yaml:"token,omitempty"`

	// AuthCollection is the auth collection used for password login.
	// Defaults to DefaultAuthCollection.
	AuthCollection string `yaml:"auth_collection,omitempty"`
}

// FileConfig points a file source at an exported schema.
type FileConfig struct {
	Path string `yaml:"path"`
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Language target (e.g., "typescript")
	Lang string `yaml:"lang,omitempty"`

	// Output file for generated declarations; "-" writes to stdout.
	Out string `yaml:"out,omitempty"`

	// Filter is an expr-lang predicate selecting collections.
	Filter string `yaml:"filter,omitempty"`

	// Schema is an exported schema file used instead of the server.
	// Relative paths resolve against the config file's directory.
	Schema string `yaml:"schema,omitempty"`
}

// SourceName returns the configured source, or empty if none.
func (c *Config) SourceName() string {
	switch {
	case c.Generate.Schema != "":
		return SourceFile
	case c.PocketBase != nil:
		return SourcePocketBase
	default:
		return ""
	}
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".pockettypes.yaml", ".pockettypes.yml", "pockettypes.yaml", "pockettypes.yml"}

// LoadConfig finds and loads the nearest .pockettypes.yaml walking up from dir.
// It also returns the directory the file was found in.
func LoadConfig(dir string) (*Config, string, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, filepath.Dir(path), nil
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// AuthCollectionOrDefault returns the auth collection used for login.
func (c *PocketBaseConfig) AuthCollectionOrDefault() string {
	if c.AuthCollection == "" {
		return DefaultAuthCollection
	}

	return c.AuthCollection
}
