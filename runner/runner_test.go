package runner_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thisuxhq/pockettypes"
	"github.com/thisuxhq/pockettypes/language/typescript"
	"github.com/thisuxhq/pockettypes/runner"
)

// staticSource returns a fixed schema.
type staticSource struct {
	collections []*pockettypes.Collection
	err         error
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Collections(context.Context) ([]*pockettypes.Collection, error) {
	return s.collections, s.err
}

var testClock = func() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func blogSchema() []*pockettypes.Collection {
	return []*pockettypes.Collection{
		{
			ID:   "u1",
			Name: "users",
			Type: pockettypes.KindAuth,
			Fields: []*pockettypes.Field{
				{Name: "name", Type: pockettypes.FieldText, Required: true},
			},
		},
		{
			ID:   "p1",
			Name: "blog_posts",
			Type: pockettypes.KindBase,
			Fields: []*pockettypes.Field{
				{Name: "title", Type: pockettypes.FieldText, Required: true},
				{
					Name:    "author",
					Type:    pockettypes.FieldRelation,
					Options: pockettypes.FieldOptions{MaxSelect: 1, CollectionID: "u1"},
				},
			},
		},
		{ID: "v1", Name: "post_stats", Type: pockettypes.KindView, Fields: []*pockettypes.Field{}},
		{ID: "s1", Name: "_internal", Type: pockettypes.KindBase, System: true, Fields: []*pockettypes.Field{}},
		{ID: "o1", Name: "orphans", Type: pockettypes.KindBase},
	}
}

func TestRunner_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "types", "pb.types.ts")

	r := runner.New(
		runner.WithSource(&staticSource{collections: blogSchema()}),
		runner.WithLanguage(typescript.New()),
		runner.WithOutput(out),
		runner.WithClock(testClock),
	)

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "static", result.Source)
	assert.Equal(t, 5, result.Fetched)
	assert.Equal(t, 0, result.Filtered)
	assert.Equal(t, 1, result.Views)
	assert.Equal(t, []string{"Users", "BlogPosts", "BlogPostsExpand", "Internal"}, result.Declared)
	assert.Equal(t, []string{"orphans"}, result.Skipped)
	assert.Equal(t, []string{out}, result.Files)
	assert.False(t, result.Ok())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "// Auto-generated by pockettypes\n// Generated on 2024-03-09T14:05:07.000Z\n\n"))
	assert.Contains(t, content, "export interface BlogPosts extends Base {\n  title: string;\n  author: Users;\n}\n")
	assert.Contains(t, content, "export interface BlogPostsExpand {\n  author?: Users;\n}\n")
	assert.NotContains(t, content, "PostStats")
}

func TestRunner_Stdout(t *testing.T) {
	var stdout bytes.Buffer

	r := runner.New(
		runner.WithSource(&staticSource{collections: blogSchema()[:1]}),
		runner.WithLanguage(typescript.New()),
		runner.WithOutput(runner.Stdout),
		runner.WithStdout(&stdout),
		runner.WithClock(testClock),
	)

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{runner.Stdout}, result.Files)
	assert.True(t, result.Ok())
	assert.Contains(t, stdout.String(), "export interface Users extends Base {\n  name: string;\n}\n")
}

func TestRunner_DefaultOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	r := runner.New(
		runner.WithSource(&staticSource{collections: blogSchema()[:1]}),
		runner.WithLanguage(typescript.New()),
		runner.WithClock(testClock),
	)

	result, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{pockettypes.DefaultOutput}, result.Files)

	_, err = os.Stat(pockettypes.DefaultOutput)
	assert.NoError(t, err)
}

func TestRunner_Filter(t *testing.T) {
	var stdout bytes.Buffer

	filter, err := runner.CompileFilter(`!system && type != "auth"`)
	require.NoError(t, err)

	r := runner.New(
		runner.WithSource(&staticSource{collections: blogSchema()}),
		runner.WithLanguage(typescript.New()),
		runner.WithFilter(filter),
		runner.WithOutput(runner.Stdout),
		runner.WithStdout(&stdout),
		runner.WithClock(testClock),
	)

	result, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Filtered)
	assert.Equal(t, []string{"BlogPosts"}, result.Declared, "filtered targets no longer resolve")
	assert.Contains(t, stdout.String(), "  author: string;\n")
	assert.NotContains(t, stdout.String(), "BlogPostsExpand")
}

func TestRunner_FetchFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pb.types.ts")
	boom := errors.New("connection refused")

	r := runner.New(
		runner.WithSource(&staticSource{err: boom}),
		runner.WithLanguage(typescript.New()),
		runner.WithOutput(out),
	)

	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrFetch)
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunner_Validation(t *testing.T) {
	_, err := runner.New(runner.WithLanguage(typescript.New())).Run(context.Background())
	assert.ErrorIs(t, err, runner.ErrNoSource)

	_, err = runner.New(runner.WithSource(&staticSource{})).Run(context.Background())
	assert.ErrorIs(t, err, runner.ErrNoLanguage)
}
