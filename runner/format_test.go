package runner

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *Result {
	start := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	r := NewResult(start)
	r.Source = "pocketbase"
	r.Fetched = 4
	r.Filtered = 1
	r.Views = 1
	r.Declared = []string{"Users", "Posts", "PostsExpand"}
	r.Skipped = []string{"orphans"}
	r.Files = []string{"pb.types.ts"}
	r.Finish(start.Add(42 * time.Millisecond))

	return r
}

func TestTextFormatter_Summary(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTextFormatter(&buf).Summary(testResult()))

	got := buf.String()
	assert.Contains(t, got, `WARN collection "orphans" has no fields, skipped`)
	assert.Contains(t, got, "WARN wrote pb.types.ts: 3 declarations from 4 collections")
	assert.Contains(t, got, "source pocketbase, 1 views, 1 filtered, 1 skipped in 42ms")
	assert.NotContains(t, got, "\x1b[", "non-terminal output is uncoloured")
}

func TestTextFormatter_SummaryOk(t *testing.T) {
	var buf bytes.Buffer

	r := testResult()
	r.Skipped = nil

	require.NoError(t, NewTextFormatter(&buf).Summary(r))
	assert.Contains(t, buf.String(), "OK wrote pb.types.ts")
}

func TestJSONFormatter_Summary(t *testing.T) {
	var buf bytes.Buffer

	r := testResult()
	r.Files = nil

	require.NoError(t, NewJSONFormatter(&buf).Summary(r))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "summary", got["action"])
	assert.Equal(t, "pocketbase", got["source"])
	assert.InDelta(t, 4, got["fetched"], 0)
	assert.Equal(t, []any{"Users", "Posts", "PostsExpand"}, got["declared"])
	assert.Equal(t, []any{}, got["files"])
	assert.Equal(t, false, got["ok"])
	assert.InDelta(t, 0.042, got["elapsed"], 1e-9)
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	assert.IsType(t, &JSONFormatter{}, NewFormatter("json", &buf))
	assert.IsType(t, &TextFormatter{}, NewFormatter("text", &buf))
	assert.IsType(t, &TextFormatter{}, NewFormatter("", &buf))
}
