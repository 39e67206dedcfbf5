package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of marklint.`,
		Run: func(_ *cobra.Command, _ []string) {
			logging.NewInteractive().Info("marklint",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}

	return cmd
}
