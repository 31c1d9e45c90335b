package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/usucyber/flagscan/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for piping into jq or other tooling during a
// competition.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as indented JSON followed by a newline.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
