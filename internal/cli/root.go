// Package cli provides the Cobra command structure for marklint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root marklint command with all
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "marklint",
		Short: "A fast, self-fixing Markdown analyzer",
		Long: `marklint analyzes Markdown documents for style issues and can fix
many of them automatically.

It understands CommonMark and GitHub Flavored Markdown, honors inline
suppression comments (markdownlint-disable and friends), and applies
fixes atomically so interrupted runs never leave a half-written file.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
