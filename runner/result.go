package runner

import "time"

// Result summarizes one generation run.
type Result struct {
	StartTime time.Time
	EndTime   time.Time

	// Source is the name of the schema source.
	Source string

	// Fetched is the number of collections the source returned.
	Fetched int

	// Filtered is the number of collections rejected by the filter.
	Filtered int

	// Views is the number of view collections left out of generation.
	Views int

	// Declared lists the emitted type names in output order.
	Declared []string

	// Skipped lists collections that produced no declaration.
	Skipped []string

	// Files lists the written paths ("-" for stdout).
	Files []string
}

// NewResult creates an initialized Result.
func NewResult(now time.Time) *Result {
	return &Result{StartTime: now}
}

// Finish marks the result as complete.
func (r *Result) Finish(now time.Time) {
	r.EndTime = now
}

// Elapsed returns the total execution time.
func (r *Result) Elapsed() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}

	return r.EndTime.Sub(r.StartTime)
}

// Ok returns true when every collection that reached the emitter was declared.
func (r *Result) Ok() bool {
	return len(r.Skipped) == 0
}
