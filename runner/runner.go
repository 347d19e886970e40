// Package runner drives a generation run: fetch the schema, filter it,
// generate declarations and write them in a single step.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/language"
	"go.uber.org/zap"
)

// Runner executes one generation.
type Runner struct {
	source pockettypes.Source
	lang   language.Language
	filter *Filter
	out    string
	stdout io.Writer
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithSource sets the schema source.
func WithSource(s pockettypes.Source) Option {
	return func(r *Runner) {
		r.source = s
	}
}

// WithLanguage sets the target language.
func WithLanguage(l language.Language) Option {
	return func(r *Runner) {
		r.lang = l
	}
}

// WithFilter keeps only the collections matching f.
func WithFilter(f *Filter) Option {
	return func(r *Runner) {
		r.filter = f
	}
}

// WithOutput sets the output path. Stdout writes to the stdout writer.
// Empty uses the language's default file name.
func WithOutput(path string) Option {
	return func(r *Runner) {
		r.out = path
	}
}

// WithStdout sets the writer used when the output path is Stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithClock overrides the time source used for banners and timings.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run fetches, generates and writes. Nothing is written if any step before
// the write fails.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.source == nil {
		return nil, ErrNoSource
	}

	if r.lang == nil {
		return nil, ErrNoLanguage
	}

	result := NewResult(r.now())
	result.Source = r.source.Name()

	collections, err := r.source.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w from %s: %w", ErrFetch, r.source.Name(), err)
	}

	result.Fetched = len(collections)

	if r.filter != nil {
		kept, err := r.filter.Apply(collections)
		if err != nil {
			return nil, err
		}

		result.Filtered = len(collections) - len(kept)
		collections = kept

		r.logger.Debug("Applied filter",
			zap.String("filter", r.filter.String()),
			zap.Int("kept", len(kept)),
			zap.Int("filtered", result.Filtered))
	}

	for _, c := range collections {
		if c.IsView() {
			result.Views++
		}
	}

	out := r.out
	if out == "" {
		out = r.lang.DefaultFileName()
	}

	output, err := r.lang.Generate(&language.GenerateContext{
		Collections: collections,
		FileName:    out,
		GeneratedAt: r.now(),
		Logger:      r.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", r.lang.Name(), err)
	}

	result.Declared = output.Declared
	result.Skipped = output.Skipped

	for name, content := range output.Files {
		if err := r.write(name, content); err != nil {
			return nil, err
		}

		result.Files = append(result.Files, name)
	}

	result.Finish(r.now())

	return result, nil
}

func (r *Runner) write(path string, content []byte) error {
	if path == Stdout {
		if _, err := r.stdout.Write(content); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}

		return nil
	}

	if err := WriteFileAtomic(path, content, 0o644); err != nil {
		return err
	}

	r.logger.Debug("Wrote file", zap.String("path", path), zap.Int("bytes", len(content)))

	return nil
}
