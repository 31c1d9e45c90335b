package model

import (
	"sort"
	"time"
)

// Report aggregates the results of a single flagscan run.
//
// Design decision: We collect matches and per-item errors into one value
// that is passed explicitly to each scan operation rather than kept as
// shared implicit state. This keeps the scanner reusable and trivially
// testable in isolation.
type Report struct {
	// Targets lists everything the run was asked to scan, in the order
	// the scans were performed (URLs, then files, then the directory).
	Targets []string `json:"targets"`

	// Matches holds every first-seen flag in discovery order.
	// Duplicate occurrences of a flag are never appended.
	Matches []Match `json:"matches"`

	// Errors holds per-item failures (unreadable files, failed fetches).
	// These never abort the run; they are collected for the summary.
	Errors []ScanError `json:"errors,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall-clock time of the run.
	// Set by Finish.
	Duration time.Duration `json:"duration"`
}

// ScanError records a single non-fatal failure during a run.
type ScanError struct {
	// Target is the file path or URL that failed.
	Target string `json:"target"`

	// Message is the underlying error text.
	Message string `json:"message"`
}

// NewReport creates an empty Report with the start time set to now.
func NewReport() *Report {
	return &Report{
		Targets:   make([]string, 0),
		Matches:   make([]Match, 0),
		Errors:    make([]ScanError, 0),
		StartedAt: time.Now(),
	}
}

// AddTarget records a scan target in run order.
func (r *Report) AddTarget(target string) {
	r.Targets = append(r.Targets, target)
}

// AddMatch appends a first-seen match in discovery order.
func (r *Report) AddMatch(m Match) {
	r.Matches = append(r.Matches, m)
}

// AddError records a non-fatal per-item failure.
func (r *Report) AddError(target string, err error) {
	r.Errors = append(r.Errors, ScanError{Target: target, Message: err.Error()})
}

// Finish stamps the run duration. Safe to call once at end of run.
func (r *Report) Finish() {
	r.Duration = time.Since(r.StartedAt)
}

// Flags returns all found flags sorted lexicographically ascending.
// Matches are unique by construction, so no deduplication happens here.
func (r *Report) Flags() []Flag {
	flags := make([]Flag, 0, len(r.Matches))
	for _, m := range r.Matches {
		flags = append(flags, m.Flag)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// HasFlags reports whether any flag was found during the run.
func (r *Report) HasFlags() bool {
	return len(r.Matches) > 0
}

// HasErrors reports whether any per-item failure was recorded.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}
