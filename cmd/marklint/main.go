// Package main is the entry point for the marklint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/marklint/internal/cli"
	"github.com/yaklabco/marklint/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // ldflags injection requires package-level vars
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		var issues *cli.IssuesError
		if errors.As(err, &issues) {
			return issues.Code
		}
		logging.Default().Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return 0
}
