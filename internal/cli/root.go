// Package cli provides the Cobra command structure for finch.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finch-reader/finch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root finch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "finch",
		Short: "A streaming markup paginator for e-ink readers",
		Long: `finch turns markup documents into pre-paginated page caches the way an
e-ink reader firmware does: a streaming tokenizer feeds a layout engine
that emits fixed-viewport pages, serialized to a compact binary cache
with O(1) page access.

The CLI builds and inspects those caches on a workstation, previews
pages in the terminal, and dumps the token stream for debugging.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newInfoCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
