package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout bounds each HTTP request. CTF targets are usually
	// nearby and fast; 10 seconds is enough patience before skipping a
	// resource and moving on.
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent is a browser-like User-Agent. Challenge servers
	// sometimes serve different content to obvious non-browser clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultMaxBodySize limits the response body size read per fetch.
	// 5MB covers realistic pages and assets while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024

	// AppName is the application name used for XDG directory paths.
	AppName = "flagscan"
)

// DefaultExtensions are the file suffixes scanned during directory walks.
// These are the web-facing text formats a challenge is likely to hide
// flags in. Matching is a case-sensitive suffix check.
func DefaultExtensions() []string {
	return []string{".html", ".htm", ".js", ".css", ".php", ".txt", ".json", ".xml"}
}

// Config holds all options for a flagscan run.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
type Config struct {
	// URLs are the pages to fetch and scan, including their directly
	// embedded resources.
	URLs []string

	// Files are individual local files to scan.
	Files []string

	// Directory is a tree to walk recursively. Empty means no directory
	// scan.
	Directory string

	// Extensions filter which files a directory walk scans.
	// Empty means DefaultExtensions.
	Extensions []string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with every fetch.
	UserAgent string

	// MaxBodySize caps how many bytes of a response body are read.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int64

	// Verbose enables detailed log output at slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport switches the final summary to JSON.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport switches the final summary to Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, writes the summary to this path instead of
	// stdout. Directories are created as needed.
	ReportFile string

	// ConfigFilePath is an explicit .flagscan path. Empty triggers the
	// standard discovery order.
	ConfigFilePath string

	// SiteConfigs holds per-site request settings from the config file.
	SiteConfigs *File
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor instead of relying on zero values
// because several defaults are non-zero (timeout, User-Agent, size cap)
// and the constructor doubles as documentation of what they are.
func NewConfig() *Config {
	return &Config{
		Extensions:  DefaultExtensions(),
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for flagscan.
// On Linux: ~/.config/flagscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found; fixing one error often makes the
// rest irrelevant.
func (c *Config) Validate() error {
	// There must be something to scan.
	if len(c.URLs) == 0 && len(c.Files) == 0 && c.Directory == "" {
		return ErrNoInput
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
