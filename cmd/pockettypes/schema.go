package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/databases/file"
	"github.com/thisuxhq/pockettypes/runner"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)


func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Dump the schema for offline generation with generate --schema",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (yaml, json)",
				Value: string(file.FormatYAML),
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file, - for stdout",
				Value:   "-",
			},
		}, sourceFlags()...),
		Action: runSchema,
	}
}

func runSchema(ctx context.Context, cmd *cli.Command) error {
	logger, done, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	defer done()

	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting cwd: %w", err)
	}

	cfg, configDir, err := loadConfigWithDir(cwd)
	if err != nil {
		return err
	}

	source, err := newSource(resolveSource(cmd, cfg, configDir))
	if err != nil {
		return err
	}

	collections, err := source.Collections(ctx)
	if err != nil {
		return err
	}

	logger.Debug("Dumping schema",
		zap.String("source", source.Name()),
		zap.Int("collections", len(collections)),
		zap.String("format", string(format)))

	return dumpSchema(cmd.String("out"), collections, format)
}

func parseFormat(name string) (file.Format, error) {
	switch file.Format(name) {
	case file.FormatYAML, file.FormatJSON:
		return file.Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q (want yaml or json)", file.ErrUnknownFormat, name)
	}
}

func dumpSchema(out string, collections []*pockettypes.Collection, format file.Format) error {
	if out == runner.Stdout {
		return file.WriteSchema(os.Stdout, collections, format)
	}

	var buf bytes.Buffer
	if err := file.WriteSchema(&buf, collections, format); err != nil {
		return err
	}

	return runner.WriteFileAtomic(out, buf.Bytes(), 0o644)
}
