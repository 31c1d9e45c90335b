package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for flagscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flagscan",
		Short: "CTF flag finder for files, directories, and web pages",
		Long: `flagscan searches for CTF flags of the form USU{...} in local files,
directory trees, and web pages.

URL scans also fetch each page's embedded resources (external scripts
and stylesheets) and scan inline scripts, inline styles, and HTML
comments, so flags hidden one hop from the page are found too.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
