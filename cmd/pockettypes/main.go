// Command pockettypes generates TypeScript declarations from a PocketBase
// schema.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// A missing .env is not an error.
	_ = godotenv.Load()

	err := rootCommand().Run(context.Background(), os.Args)
	if err != nil {
		logger, _ := newLogger(false)
		logger.Error("pockettypes failed", zap.Error(err))
		_ = logger.Sync()

		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:           "pockettypes",
		Usage:          "Generate TypeScript interfaces from a PocketBase schema",
		DefaultCommand: "generate",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("POCKETTYPES_DEBUG"),
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			schemaCommand(),
		},
	}
}

// newLogger builds a development logger writing to stderr; stdout may carry
// the generated file.
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	return logger, nil
}

// commandLogger builds the logger for cmd and installs it as the global
// logger used by registered sources.
func commandLogger(cmd *cli.Command) (*zap.Logger, func(), error) {
	logger, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return nil, nil, err
	}

	restore := zap.ReplaceGlobals(logger)

	return logger, func() {
		restore()

		_ = logger.Sync()
	}, nil
}
