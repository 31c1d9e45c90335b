package scanner

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/usucyber/flagscan/internal/fetch"
	"github.com/usucyber/flagscan/internal/matcher"
	"github.com/usucyber/flagscan/internal/model"
)

// DefaultExtensions are the file suffixes scanned during a directory walk
// when the user does not override them. Matching is a case-sensitive
// suffix check.
var DefaultExtensions = []string{
	".html", ".htm", ".js", ".css", ".php", ".txt", ".json", ".xml",
}

// Scanner enumerates text sources and feeds them to a Matcher.
//
// Design decision: The Scanner takes its Matcher and Report as explicit
// dependencies instead of owning them because a single Matcher must span
// all sources of a run for cross-source deduplication, while the Scanner
// itself stays stateless and reusable.
type Scanner struct {
	// matcher extracts and deduplicates flags.
	matcher *matcher.Matcher

	// client fetches URLs and their embedded resources.
	client *fetch.Client

	// logger receives verbose diagnostics.
	logger *slog.Logger

	// diag receives user-facing per-item failure lines.
	diag io.Writer

	// report collects per-item failures for the final summary.
	// May be nil, in which case failures are only printed.
	report *model.Report

	// extensions filter directory walks (case-sensitive suffix match).
	extensions []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger for verbose diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithDiagnostics sets the writer for per-item failure messages.
// Defaults to os.Stdout, where the original tool printed them.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Scanner) {
		s.diag = w
	}
}

// WithReport attaches a Report that collects per-item failures.
func WithReport(r *model.Report) Option {
	return func(s *Scanner) {
		s.report = r
	}
}

// WithExtensions overrides the directory-walk extension filter.
// An empty slice falls back to DefaultExtensions.
func WithExtensions(exts []string) Option {
	return func(s *Scanner) {
		if len(exts) > 0 {
			s.extensions = exts
		}
	}
}

// New creates a Scanner around the given matcher and fetch client.
func New(m *matcher.Matcher, client *fetch.Client, opts ...Option) *Scanner {
	s := &Scanner{
		matcher:    m,
		client:     client,
		logger:     slog.Default(),
		diag:       os.Stdout,
		extensions: DefaultExtensions,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// recordFailure prints a per-item failure and records it on the report.
// Failures are local: the run always continues.
func (s *Scanner) recordFailure(target string, err error) {
	fmt.Fprintf(s.diag, "[-] Error: %s: %v\n", target, err)
	s.logger.Debug("scan item failed", "target", target, "error", err)
	if s.report != nil {
		s.report.AddError(target, err)
	}
}
