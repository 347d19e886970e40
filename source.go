package pockettypes

import (
	"fmt"
	"sort"
)

// SourceFactory creates a Source from its configuration.
// Each source documents the concrete config type it expects.
type SourceFactory func(cfg any) (Source, error)

var sources = make(map[string]SourceFactory)

// RegisterSource registers a source factory by name.
func RegisterSource(name string, factory SourceFactory) {
	sources[name] = factory
}

// NewSource creates a source instance by name.
func NewSource(name string, cfg any) (Source, error) { //nolint:ireturn
	factory, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}

	return factory(cfg)
}

// RegisteredSources returns the names of all registered sources, sorted.
func RegisteredSources() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
