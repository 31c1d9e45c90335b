package scanner

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/usucyber/flagscan/internal/fetch"
	"github.com/usucyber/flagscan/internal/matcher"
	"github.com/usucyber/flagscan/internal/model"
)

// newURLTestScanner builds a Scanner with a real fetch client for use
// against httptest servers.
func newURLTestScanner(_ *testing.T) (*Scanner, *matcher.Matcher, *model.Report) {
	report := model.NewReport()
	m := matcher.New(matcher.WithOnMatch(report.AddMatch))
	s := New(m, fetch.NewClient(),
		WithReport(report),
		WithDiagnostics(&bytes.Buffer{}),
	)
	return s, m, report
}

// sourceOf returns the first-seen source label for a flag, or "".
func sourceOf(report *model.Report, flag model.Flag) string {
	for _, match := range report.Matches {
		if match.Flag == flag {
			return match.Source
		}
	}
	return ""
}

// TestScanURL tests page scanning with embedded resources.
func TestScanURL(t *testing.T) {
	t.Parallel()

	t.Run("scans page and all embedded resource kinds", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><head>
				<script src="/app.js"></script>
				<link rel="stylesheet" href="/style.css">
				<style>.x { color: red; } /* USU{y2} */</style>
			</head><body>
				<script>var inline = "USU{inline_js}";</script>
				<!-- USU{comment_flag} -->
				<p>USU{body_flag}</p>
			</body></html>`))
		})
		mux.HandleFunc("/app.js", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`console.log("USU{y1}");`))
		})
		mux.HandleFunc("/style.css", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`/* USU{external_css} */`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s, m, report := newURLTestScanner(t)
		s.ScanURL(context.Background(), srv.URL+"/")

		want := []model.Flag{
			"USU{body_flag}", "USU{comment_flag}", "USU{external_css}",
			"USU{inline_js}", "USU{y1}", "USU{y2}",
		}
		flags := m.Found()
		if len(flags) != len(want) {
			t.Fatalf("expected %d flags, got %d: %v", len(want), len(flags), flags)
		}
		for i, f := range want {
			if flags[i] != f {
				t.Errorf("expected %q at %d, got %q", f, i, flags[i])
			}
		}

		// Source attribution per kind.
		if src := sourceOf(report, "USU{y1}"); !strings.Contains(src, "JavaScript") {
			t.Errorf("external script flag not attributed to JavaScript: %q", src)
		}
		if src := sourceOf(report, "USU{y2}"); !strings.Contains(src, "CSS") {
			t.Errorf("inline style flag not attributed to CSS: %q", src)
		}
		if src := sourceOf(report, "USU{external_css}"); !strings.Contains(src, "(CSS)") {
			t.Errorf("stylesheet flag not attributed to (CSS): %q", src)
		}
		if src := sourceOf(report, "USU{inline_js}"); !strings.Contains(src, "Inline JavaScript") {
			t.Errorf("inline script flag not attributed: %q", src)
		}
		if src := sourceOf(report, "USU{body_flag}"); !strings.Contains(src, "HTML") {
			t.Errorf("body flag not attributed to HTML: %q", src)
		}
	})

	t.Run("raw body scan wins attribution over text-node sweep", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><p>USU{first_seen}</p></body></html>`))
		}))
		defer srv.Close()

		s, m, report := newURLTestScanner(t)
		s.ScanURL(context.Background(), srv.URL)

		src := sourceOf(report, "USU{first_seen}")
		if !strings.Contains(src, "(HTML)") {
			t.Errorf("expected raw-body attribution (HTML), got %q", src)
		}
		if m.Count() != 1 {
			t.Errorf("text-node sweep must not double-report, got %d flags", m.Count())
		}
	})

	t.Run("failed resource fetch is skipped, scan continues", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><head>
				<script src="/missing.js"></script>
				<link rel="stylesheet" href="/style.css">
			</head></html>`))
		})
		mux.HandleFunc("/style.css", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`/* USU{still_found} */`))
		})
		// The "/" pattern is a catch-all, so /missing.js must be
		// registered explicitly to actually fail.
		mux.HandleFunc("/missing.js", http.NotFound)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s, m, report := newURLTestScanner(t)
		s.ScanURL(context.Background(), srv.URL+"/")

		if len(report.Errors) != 1 {
			t.Fatalf("expected 1 recorded error, got %d: %v", len(report.Errors), report.Errors)
		}
		if !strings.Contains(report.Errors[0].Target, "/missing.js") {
			t.Errorf("unexpected error target %q", report.Errors[0].Target)
		}

		flags := m.Found()
		if len(flags) != 1 || flags[0] != "USU{still_found}" {
			t.Errorf("expected USU{still_found}, got %v", flags)
		}
	})

	t.Run("main page failure aborts only this URL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		s, m, report := newURLTestScanner(t)
		s.ScanURL(context.Background(), srv.URL)

		if m.Count() != 0 {
			t.Errorf("expected no flags, got %d", m.Count())
		}
		if len(report.Errors) != 1 {
			t.Errorf("expected 1 recorded error, got %d", len(report.Errors))
		}
	})

	t.Run("duplicate flag across page and resource reported once", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body>USU{shared}<script src="/a.js"></script></body></html>`))
		})
		mux.HandleFunc("/a.js", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`// USU{shared}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s, m, _ := newURLTestScanner(t)
		s.ScanURL(context.Background(), srv.URL+"/")

		if m.Count() != 1 {
			t.Errorf("expected 1 distinct flag, got %d", m.Count())
		}
	})
}
