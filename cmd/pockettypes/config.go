package main

import (
	"errors"
	"path/filepath"

	"github.com/thisuxhq/pockettypes"
	"github.com/urfave/cli/v3"
)

// loadConfigWithDir loads the nearest config and returns it with the
// directory it was found in. A missing config is not an error.
func loadConfigWithDir(startDir string) (*pockettypes.Config, string, error) {
	cfg, dir, err := pockettypes.LoadConfig(startDir)
	if errors.Is(err, pockettypes.ErrConfigNotFound) {
		return &pockettypes.Config{}, startDir, nil
	}

	if err != nil {
		return nil, "", err
	}

	return cfg, dir, nil
}

// sourceFlags are shared by every command that reads a schema.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "schema",
			Aliases: []string{"s"},
			Usage:   "read an exported schema file (JSON or YAML) instead of a server",
		},
		&cli.StringFlag{
			Name:    "url",
			Usage:   "PocketBase server URL",
			Sources: cli.EnvVars("POCKETBASE_URL"),
		},
		&cli.StringFlag{
			Name:    "username",
			Usage:   "superuser email",
			Sources: cli.EnvVars("POCKETBASE_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "superuser password",
			Sources: cli.EnvVars("POCKETBASE_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "pre-issued superuser token (skips password login)",
			Sources: cli.EnvVars("POCKETBASE_TOKEN"),
		},
	}
}

// resolveSource applies flag and env values over the config file and
// returns a config holding only the effective source settings.
func resolveSource(cmd *cli.Command, cfg *pockettypes.Config, configDir string) *pockettypes.Config {
	effective := &pockettypes.Config{}

	effective.Generate.Schema = cmd.String("schema")
	if effective.Generate.Schema == "" {
		effective.Generate.Schema = resolvePath(cfg.Generate.Schema, configDir)
	}

	var fromCfg pockettypes.PocketBaseConfig
	if cfg.PocketBase != nil {
		fromCfg = *cfg.PocketBase
	}

	pb := pockettypes.PocketBaseConfig{
		URL:            firstNonEmpty(cmd.String("url"), fromCfg.URL),
		Username:       firstNonEmpty(cmd.String("username"), fromCfg.Username),
		Password:       firstNonEmpty(cmd.String("password"), fromCfg.Password),
		Token:          firstNonEmpty(cmd.String("token"), fromCfg.Token),
		AuthCollection: fromCfg.AuthCollection,
	}

	if pb.URL != "" {
		effective.PocketBase = &pb
	}

	return effective
}

// newSource builds the source cfg selects through the registry.
func newSource(cfg *pockettypes.Config) (pockettypes.Source, error) { //nolint:ireturn
	switch name := cfg.SourceName(); name {
	case pockettypes.SourceFile:
		return pockettypes.NewSource(name, &pockettypes.FileConfig{Path: cfg.Generate.Schema})
	case pockettypes.SourcePocketBase:
		return pockettypes.NewSource(name, cfg.PocketBase)
	default:
		return nil, ErrNoSourceConfigured
	}
}

// resolvePath makes a config-relative path absolute.
func resolvePath(path, dir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
