package main

import "errors"

// Command errors.
var (
	// ErrNoSourceConfigured is returned when neither a server nor a schema file is set.
	ErrNoSourceConfigured = errors.New("no schema source: set --url or --schema, or add a pocketbase section to .pockettypes.yaml")

	// ErrUnknownLanguage is returned for a --lang no generator is registered for.
	ErrUnknownLanguage = errors.New("unknown language")
)
