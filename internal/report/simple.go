package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/usucyber/flagscan/internal/model"
)

// bannerWidth is the width of the summary separator lines.
const bannerWidth = 60

// SimpleWriter outputs the human-readable text summary.
// This is the default terminal output after a scan completes.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showErrors includes the per-target error list in the summary.
	showErrors bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowErrors includes skipped targets and their failure reasons
// in the summary.
func WithShowErrors(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showErrors = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the final summary in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")

	if report.HasFlags() {
		sb.WriteString(fmt.Sprintf("[+] Total flags found: %d\n", len(report.Flags())))
		sb.WriteString("\nAll flags:\n")
		for _, flag := range report.Flags() {
			sb.WriteString(fmt.Sprintf("  %s\n", flag))
		}
	} else {
		sb.WriteString("[-] No flags found\n")
	}

	if w.showErrors && report.HasErrors() {
		sb.WriteString(fmt.Sprintf("\n[-] Skipped %d target(s):\n", len(report.Errors)))
		for _, scanErr := range report.Errors {
			sb.WriteString(fmt.Sprintf("    %s: %s\n", scanErr.Target, scanErr.Message))
		}
	}

	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
