package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/language"
	"github.com/thisuxhq/pockettypes/runner"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	// Register sources and languages.
	_ "github.com/thisuxhq/pockettypes/databases/file"
	_ "github.com/thisuxhq/pockettypes/databases/pocketbase"
	_ "github.com/thisuxhq/pockettypes/language/typescript"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate type declarations from the schema",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "target language (typescript)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file, - for stdout (default: pb.types.ts)",
			},
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   `only generate collections matching an expression, e.g. '!system'`,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the run summary as JSON",
			},
		}, sourceFlags()...),
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	logger, done, err := commandLogger(cmd)
	if err != nil {
		return err
	}
	defer done()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting cwd: %w", err)
	}

	cfg, configDir, err := loadConfigWithDir(cwd)
	if err != nil {
		return err
	}

	langName := firstNonEmpty(cmd.String("lang"), cfg.Generate.Lang, pockettypes.LangTypeScript)
	out := firstNonEmpty(cmd.String("out"), resolvePath(cfg.Generate.Out, configDir))
	filterSrc := firstNonEmpty(cmd.String("filter"), cfg.Generate.Filter)

	lang := language.Get(langName)
	if lang == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownLanguage, langName, language.RegisteredLanguages())
	}

	if out == "" {
		out = lang.DefaultFileName()
	}

	source, err := newSource(resolveSource(cmd, cfg, configDir))
	if err != nil {
		return err
	}

	opts := []runner.Option{
		runner.WithSource(source),
		runner.WithLanguage(lang),
		runner.WithOutput(out),
		runner.WithLogger(logger),
	}

	if filterSrc != "" {
		filter, err := runner.CompileFilter(filterSrc)
		if err != nil {
			return err
		}

		opts = append(opts, runner.WithFilter(filter))
	}

	logger.Debug("Generating",
		zap.String("source", source.Name()),
		zap.String("lang", langName),
		zap.String("out", out))

	result, err := runner.New(opts...).Run(ctx)
	if err != nil {
		return err
	}

	format := "text"
	if cmd.Bool("json") {
		format = "json"
	}

	return runner.NewFormatter(format, summaryWriter(out)).Summary(result)
}

// summaryWriter keeps stdout clean when it carries the generated file.
func summaryWriter(out string) io.Writer {
	if out == runner.Stdout {
		return os.Stderr
	}

	return os.Stdout
}
