package runner

import "errors"

// Sentinel errors for the runner package.
var (
	// ErrNoSource is returned when no schema source is configured.
	ErrNoSource = errors.New("runner: no schema source configured")

	// ErrNoLanguage is returned when no target language is configured.
	ErrNoLanguage = errors.New("runner: no target language configured")

	// ErrInvalidFilter is returned when a filter expression does not compile.
	ErrInvalidFilter = errors.New("runner: invalid filter expression")

	// ErrFetch is returned when the source cannot supply the schema.
	ErrFetch = errors.New("runner: fetching schema failed")
)
