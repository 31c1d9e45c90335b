package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/usucyber/flagscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for pasting into writeups and team notes.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFlags(md, report)
	w.writeMatches(md, report)
	w.writeErrors(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Flag Scan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Scan Date", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.String()},
			{"Targets", strconv.Itoa(len(report.Targets))},
			{"Flags Found", strconv.Itoa(len(report.Flags()))},
			{"Errors", strconv.Itoa(len(report.Errors))},
		},
	})
	md.PlainText("")
}

// writeFlags writes the sorted flag list.
func (w *MarkdownWriter) writeFlags(md *markdown.Markdown, report *model.Report) {
	md.H2("Flags")
	md.PlainText("")

	if !report.HasFlags() {
		md.PlainText("No flags found.")
		md.PlainText("")
		return
	}

	items := make([]string, 0, len(report.Flags()))
	for _, flag := range report.Flags() {
		items = append(items, "`"+string(flag)+"`")
	}
	md.BulletList(items...)
	md.PlainText("")
}

// writeMatches writes the flag-to-source attribution table.
func (w *MarkdownWriter) writeMatches(md *markdown.Markdown, report *model.Report) {
	if !report.HasFlags() {
		return
	}

	md.H2("Sources")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Matches))
	for _, m := range report.Matches {
		rows = append(rows, []string{"`" + string(m.Flag) + "`", m.Source})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Flag", "Source"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeErrors writes the skipped-target section, if any.
func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, report *model.Report) {
	if !report.HasErrors() {
		return
	}

	md.H2("Skipped Targets")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Errors))
	for _, scanErr := range report.Errors {
		rows = append(rows, []string{scanErr.Target, scanErr.Message})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Target", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}
