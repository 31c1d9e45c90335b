package model

import (
	"errors"
	"testing"
)

// TestReportFlags tests the sorted flag listing.
func TestReportFlags(t *testing.T) {
	t.Parallel()

	t.Run("returns flags sorted ascending", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.AddMatch(Match{Flag: "USU{zeta}", Source: "b.txt"})
		r.AddMatch(Match{Flag: "USU{alpha}", Source: "a.txt"})
		r.AddMatch(Match{Flag: "USU{mid}", Source: "c.txt"})

		flags := r.Flags()
		if len(flags) != 3 {
			t.Fatalf("expected 3 flags, got %d", len(flags))
		}
		if flags[0] != "USU{alpha}" || flags[1] != "USU{mid}" || flags[2] != "USU{zeta}" {
			t.Errorf("flags not sorted: %v", flags)
		}
	})

	t.Run("empty report has no flags", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		if r.HasFlags() {
			t.Error("expected HasFlags to be false")
		}
		if len(r.Flags()) != 0 {
			t.Errorf("expected no flags, got %v", r.Flags())
		}
	})

	t.Run("match order is preserved in Matches", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.AddMatch(Match{Flag: "USU{second}", Source: "x"})
		r.AddMatch(Match{Flag: "USU{first}", Source: "y"})

		if r.Matches[0].Flag != "USU{second}" {
			t.Errorf("expected discovery order preserved, got %v", r.Matches)
		}
	})
}

// TestReportErrors tests per-item error collection.
func TestReportErrors(t *testing.T) {
	t.Parallel()

	r := NewReport()
	if r.HasErrors() {
		t.Error("expected no errors on new report")
	}

	r.AddError("/missing/file.txt", errors.New("no such file or directory"))

	if !r.HasErrors() {
		t.Error("expected HasErrors after AddError")
	}
	if r.Errors[0].Target != "/missing/file.txt" {
		t.Errorf("unexpected target %q", r.Errors[0].Target)
	}
	if r.Errors[0].Message == "" {
		t.Error("expected non-empty error message")
	}
}

// TestReportFinish tests duration stamping.
func TestReportFinish(t *testing.T) {
	t.Parallel()

	r := NewReport()
	r.Finish()
	if r.Duration < 0 {
		t.Errorf("expected non-negative duration, got %v", r.Duration)
	}
}

// TestSourceLabel tests provenance string formatting.
func TestSourceLabel(t *testing.T) {
	t.Parallel()

	got := SourceLabel("http://example.com/app.js", KindJavaScript)
	want := "http://example.com/app.js (JavaScript)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = SourceLabel("http://example.com/", KindInlineCSS)
	want = "http://example.com/ (Inline CSS)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
