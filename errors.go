package pockettypes

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .pockettypes.yaml is found.
	ErrConfigNotFound = errors.New("pockettypes: no .pockettypes.yaml found")

	// ErrUnknownSource is returned when an unregistered source is requested.
	ErrUnknownSource = errors.New("pockettypes: unknown source")

	// ErrInvalidConfig is returned for an unreadable config file or a
	// source given the wrong config type.
	ErrInvalidConfig = errors.New("pockettypes: invalid config")

	// ErrNoSchema is returned when a schema file holds no collections.
	ErrNoSchema = errors.New("pockettypes: schema contains no collections")
)
