package pockettypes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisuxhq/pockettypes"
)

type staticSource struct {
	collections []*pockettypes.Collection
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Collections(context.Context) ([]*pockettypes.Collection, error) {
	return s.collections, nil
}

func TestSourceRegistry(t *testing.T) {
	pockettypes.RegisterSource("static", func(cfg any) (pockettypes.Source, error) {
		cols, _ := cfg.([]*pockettypes.Collection)
		return &staticSource{collections: cols}, nil
	})

	assert.Contains(t, pockettypes.RegisteredSources(), "static")

	want := []*pockettypes.Collection{{ID: "a", Name: "posts"}}
	src, err := pockettypes.NewSource("static", want)
	require.NoError(t, err)
	assert.Equal(t, "static", src.Name())

	got, err := src.Collections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewSourceUnknown(t *testing.T) {
	_, err := pockettypes.NewSource("nonexistent", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, pockettypes.ErrUnknownSource))
}
