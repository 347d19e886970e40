package pocketbase

import "errors"

// Sentinel errors for the pocketbase package.
var (
	// ErrInvalidConfig is returned when an invalid configuration is provided.
	ErrInvalidConfig = errors.New("pocketbase: expected *pockettypes.PocketBaseConfig")

	// ErrNoURL is returned when the configuration has no server URL.
	ErrNoURL = errors.New("pocketbase: no server URL configured")

	// ErrAuth is returned when the server rejects the credentials.
	ErrAuth = errors.New("pocketbase: authentication failed")

	// ErrRequest is returned when the server answers with a non-2xx status.
	ErrRequest = errors.New("pocketbase: request failed")
)
