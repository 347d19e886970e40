package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Formatter renders a run summary.
type Formatter interface {
	Summary(result *Result) error
}

// -----------------------------------------------------------------------------
// Text Formatter
// -----------------------------------------------------------------------------

// TextFormatter prints a short human-readable summary.
// Colours are used only when the writer is a terminal.
type TextFormatter struct {
	w io.Writer

	ok   lipgloss.Style
	warn lipgloss.Style
	dim  lipgloss.Style
	bold lipgloss.Style
}

// NewTextFormatter creates a text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	renderer := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &TextFormatter{
		w:    w,
		ok:   renderer.NewStyle().Foreground(lipgloss.Color("#00BA7C")).Bold(true),
		warn: renderer.NewStyle().Foreground(lipgloss.Color("#F5A623")).Bold(true),
		dim:  renderer.NewStyle().Foreground(lipgloss.Color("#8899A6")),
		bold: renderer.NewStyle().Bold(true),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// Summary prints what was generated and where it went.
func (t *TextFormatter) Summary(result *Result) error {
	for _, name := range result.Skipped {
		_, _ = fmt.Fprintf(t.w, "%s collection %q has no fields, skipped\n", t.warn.Render("WARN"), name)
	}

	status := t.ok.Render("OK")
	if !result.Ok() {
		status = t.warn.Render("WARN")
	}

	files := strings.Join(result.Files, ", ")
	if files == "" {
		files = "nothing"
	}

	_, _ = fmt.Fprintf(t.w, "%s wrote %s: %d declarations from %d collections\n",
		status,
		t.bold.Render(files),
		len(result.Declared),
		result.Fetched,
	)

	_, err := fmt.Fprintln(t.w, t.dim.Render(fmt.Sprintf("  source %s, %d views, %d filtered, %d skipped in %s",
		result.Source,
		result.Views,
		result.Filtered,
		len(result.Skipped),
		result.Elapsed().Round(time.Millisecond),
	)))

	return err
}

// -----------------------------------------------------------------------------
// JSON Formatter
// -----------------------------------------------------------------------------

// JSONFormatter outputs the summary as one JSON object.
type JSONFormatter struct {
	enc *json.Encoder
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{enc: json.NewEncoder(w)}
}

type jsonSummary struct {
	Action   string   `json:"action"`
	Source   string   `json:"source"`
	Fetched  int      `json:"fetched"`
	Filtered int      `json:"filtered"`
	Views    int      `json:"views"`
	Declared []string `json:"declared"`
	Skipped  []string `json:"skipped"`
	Files    []string `json:"files"`
	Elapsed  float64  `json:"elapsed"`
	Ok       bool     `json:"ok"`
}

// Summary outputs the final JSON summary.
func (j *JSONFormatter) Summary(result *Result) error {
	return j.enc.Encode(jsonSummary{
		Action:   "summary",
		Source:   result.Source,
		Fetched:  result.Fetched,
		Filtered: result.Filtered,
		Views:    result.Views,
		Declared: nonNil(result.Declared),
		Skipped:  nonNil(result.Skipped),
		Files:    nonNil(result.Files),
		Elapsed:  result.Elapsed().Seconds(),
		Ok:       result.Ok(),
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// NewFormatter creates a formatter by name ("text" or "json").
func NewFormatter(name string, w io.Writer) Formatter { //nolint:ireturn
	switch name {
	case "json":
		return NewJSONFormatter(w)
	default:
		return NewTextFormatter(w)
	}
}
