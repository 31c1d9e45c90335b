package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/usucyber/flagscan/internal/config"
	"github.com/usucyber/flagscan/internal/fetch"
	"github.com/usucyber/flagscan/internal/log"
	"github.com/usucyber/flagscan/internal/matcher"
	"github.com/usucyber/flagscan/internal/model"
	"github.com/usucyber/flagscan/internal/report"
	"github.com/usucyber/flagscan/internal/scanner"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Search files, directories, and web pages for USU{...} flags",
		Long: `Scan searches the given targets for CTF flags of the form USU{...}.

Each URL target is fetched and scanned together with its embedded
resources: external scripts, inline scripts, external stylesheets,
inline styles, and HTML text including comments. Files are read with a
lossy text decode, so binary files degrade to best-effort partial text
instead of aborting the run.

Every flag is reported once, attributed to the source where it was
first seen. The run ends with a sorted summary of all distinct flags.

Examples:
  # Scan a web page and its embedded resources
  flagscan scan -u http://challenge.example.com

  # Scan multiple pages
  flagscan scan -u http://a.example.com -u http://b.example.com

  # Scan local files and a directory tree
  flagscan scan -f notes.txt -f dump.bin -d ./challenges

  # Only scan .js and .txt files during the directory walk
  flagscan scan -d ./challenges --extensions .js,.txt

  # Write a JSON report to a file
  flagscan scan -u http://challenge.example.com --json -o report.json

Configuration file (.flagscan) example:
  sites:
    challenge.example.com:
      cookie: "session_id=abc123"
      headers:
        Authorization: "Bearer token"`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Target flags
	cmd.Flags().StringArrayP("url", "u", nil,
		"URL to scan, including its embedded resources (repeatable)")
	cmd.Flags().StringArrayP("files", "f", nil,
		"Local file to scan (repeatable)")
	cmd.Flags().StringP("directory", "d", "",
		"Directory tree to scan recursively")
	cmd.Flags().StringSlice("extensions", nil,
		"File suffixes scanned during the directory walk (default: common web text formats)")

	// HTTP behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with every request")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .flagscan in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoInput) {
			// Nothing to scan reads like "how do I use this"; show help.
			_ = cmd.Usage() //nolint:errcheck // Best effort help output
		}
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)

	// Handle interrupt signals for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.URLs, err = cmd.Flags().GetStringArray("url")
	if err != nil {
		return nil, err
	}

	cfg.Files, err = cmd.Flags().GetStringArray("files")
	if err != nil {
		return nil, err
	}

	cfg.Directory, err = cmd.Flags().GetString("directory")
	if err != nil {
		return nil, err
	}

	extensions, err := cmd.Flags().GetStringSlice("extensions")
	if err != nil {
		return nil, err
	}
	if len(extensions) > 0 {
		cfg.Extensions = extensions
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runScan executes the scan across all configured targets.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	fmt.Fprintln(out, "[*] Starting flag search...")
	fmt.Fprintf(out, "[*] Looking for pattern: USU{...}\n\n")

	scanReport := model.NewReport()

	// The matcher is shared across every target so a flag seen on a page
	// and again in a local file is reported exactly once.
	m := matcher.New(matcher.WithOnMatch(func(match model.Match) {
		fmt.Fprintf(out, "\n[+] FLAG FOUND: %s\n    Source: %s\n", match.Flag, match.Source)
		scanReport.AddMatch(match)
	}))

	for _, pageURL := range cfg.URLs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprintf(out, "[*] Scanning URL: %s\n", pageURL)
		scanReport.AddTarget(pageURL)

		client := newClientForURL(cfg, pageURL)
		s := scanner.New(m, client,
			scanner.WithLogger(logger),
			scanner.WithDiagnostics(out),
			scanner.WithReport(scanReport),
		)
		s.ScanURL(ctx, pageURL)
	}

	if len(cfg.Files) > 0 || cfg.Directory != "" {
		s := scanner.New(m, nil,
			scanner.WithLogger(logger),
			scanner.WithDiagnostics(out),
			scanner.WithReport(scanReport),
			scanner.WithExtensions(cfg.Extensions),
		)

		for _, path := range cfg.Files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fmt.Fprintf(out, "[*] Scanning file: %s\n", path)
			scanReport.AddTarget(path)
			s.ScanFile(path)
		}

		if cfg.Directory != "" {
			fmt.Fprintf(out, "[*] Scanning directory: %s\n", cfg.Directory)
			scanReport.AddTarget(cfg.Directory)
			s.ScanDirectory(cfg.Directory)
		}
	}

	scanReport.Finish()
	logger.Debug("scan finished",
		"targets", len(scanReport.Targets),
		"flags", len(scanReport.Matches),
		"errors", len(scanReport.Errors),
	)

	return outputReport(cfg, scanReport, out)
}

// newClientForURL builds a fetch client for one URL, applying per-site
// settings (cookie, headers, User-Agent) from the configuration file.
func newClientForURL(cfg *config.Config, pageURL string) *fetch.Client {
	opts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
	}
	if cfg.MaxBodySize > 0 {
		opts = append(opts, fetch.WithMaxBodySize(cfg.MaxBodySize))
	}

	if cfg.SiteConfigs != nil {
		host := hostOf(pageURL)
		siteConfig := cfg.SiteConfigs.GetSiteConfig(host)
		if headers := siteConfig.RequestHeaders(); headers != nil {
			opts = append(opts, fetch.WithHeaders(headers))
		}
		if siteConfig.UserAgent != "" {
			opts = append(opts, fetch.WithUserAgent(siteConfig.UserAgent))
		}
	}

	return fetch.NewClient(opts...)
}

// hostOf extracts the host (with port, if any) from a URL string.
// Returns the input unchanged if it does not parse; site lookup then
// simply finds no entry.
func hostOf(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return pageURL
	}
	return parsed.Host
}

// outputReport writes the final summary in the requested format.
func outputReport(cfg *config.Config, scanReport *model.Report, out io.Writer) error {
	// Determine output destination
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// 0600 because reports may quote content fetched with credentials
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(out)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(out)
	default:
		w = report.NewSimpleWriter(out, report.WithShowErrors(cfg.Verbose))
	}

	_, err := w.Write(scanReport)
	return err
}
