package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/usucyber/flagscan/internal/model"
)

// sampleReport builds a report with two flags and one error.
func sampleReport() *model.Report {
	r := model.NewReport()
	r.AddTarget("http://example.com")
	r.AddTarget("notes.txt")
	r.AddMatch(model.Match{Flag: "USU{zeta}", Source: "notes.txt"})
	r.AddMatch(model.Match{Flag: "USU{alpha}", Source: "http://example.com (HTML)"})
	r.AddError("missing.txt", errors.New("no such file"))
	r.Finish()
	return r
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("summary with flags", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(sampleReport())
		if err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if n != buf.Len() {
			t.Errorf("Write() = %d bytes, buffer holds %d", n, buf.Len())
		}

		out := buf.String()
		if !strings.Contains(out, "[+] Total flags found: 2") {
			t.Errorf("missing total line, got:\n%s", out)
		}
		if !strings.Contains(out, strings.Repeat("=", 60)) {
			t.Errorf("missing banner, got:\n%s", out)
		}

		// Flags are listed sorted, indented by two spaces.
		alphaIdx := strings.Index(out, "  USU{alpha}")
		zetaIdx := strings.Index(out, "  USU{zeta}")
		if alphaIdx < 0 || zetaIdx < 0 {
			t.Fatalf("missing flag lines, got:\n%s", out)
		}
		if alphaIdx > zetaIdx {
			t.Error("flags are not sorted ascending")
		}
	})

	t.Run("summary without flags", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		r := model.NewReport()
		r.Finish()
		if _, err := w.Write(r); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "[-] No flags found") {
			t.Errorf("missing no-flags line, got:\n%s", out)
		}
		if strings.Contains(out, "[+] Total flags found") {
			t.Errorf("total line should be omitted without flags, got:\n%s", out)
		}
	})

	t.Run("errors hidden by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if strings.Contains(buf.String(), "missing.txt") {
			t.Error("errors should not appear without WithShowErrors")
		}
	})

	t.Run("errors shown when enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithShowErrors(true))
		if _, err := w.Write(sampleReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "missing.txt: no such file") {
			t.Errorf("missing error line, got:\n%s", out)
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Matches) != 2 {
		t.Errorf("Matches = %d, want 2", len(decoded.Matches))
	}
	if len(decoded.Errors) != 1 {
		t.Errorf("Errors = %d, want 1", len(decoded.Errors))
	}
	if len(decoded.Targets) != 2 {
		t.Errorf("Targets = %d, want 2", len(decoded.Targets))
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("report with flags", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(sampleReport()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"# Flag Scan Report",
			"## Flags",
			"`USU{alpha}`",
			"## Sources",
			"http://example.com (HTML)",
			"## Skipped Targets",
			"missing.txt",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("report without flags", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		r := model.NewReport()
		r.Finish()
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "No flags found.") {
			t.Errorf("missing no-flags text, got:\n%s", out)
		}
		if strings.Contains(out, "## Sources") {
			t.Error("sources section should be omitted without flags")
		}
	})
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))

	n, err := mw.Write(sampleReport())
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if a.Len() == 0 || b.Len() == 0 {
		t.Error("both writers should receive output")
	}
	if n != a.Len()+b.Len() {
		t.Errorf("total = %d, want %d", n, a.Len()+b.Len())
	}
}
