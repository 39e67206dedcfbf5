package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/marklint/internal/logging"
	"github.com/yaklabco/marklint/internal/ui/pretty"
	"github.com/yaklabco/marklint/pkg/configsource"
	"github.com/yaklabco/marklint/pkg/engine"
	goldmarkparser "github.com/yaklabco/marklint/pkg/parser/goldmark"
	"github.com/yaklabco/marklint/pkg/rules"
	"github.com/yaklabco/marklint/pkg/runner"
)

// defaultConfigFile is the project config searched for when --config
// is not given.
const defaultConfigFile = ".marklint.yml"

type checkFlags struct {
	fix     bool
	dryRun  bool
	strict  bool
	jobs    int
	flavor  string
	ignore  []string
	disable []string
	set     []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check Markdown files",
		Long: `Check Markdown files for style issues.

By default, checks all .md and .markdown files under the current
directory. Specify paths to check specific files or directories.

Examples:
  marklint check                  # Check current directory
  marklint check docs/ README.md  # Check specific paths
  marklint check --fix            # Check and apply fixes
  marklint check --fix --dry-run  # Show fixes without writing
  marklint check --strict         # Treat warnings as failures
  marklint check --set MD013=false`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.fix, "fix", false, "apply available fixes")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "compute fixes without writing files")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as failures")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of concurrent workers (0 = auto)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", goldmarkparser.FlavorGFM, "markdown flavor: commonmark, gfm")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of paths to skip")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.set, "set", nil, "rule override as RULE=VALUE (e.g. MD013=true:error)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	registry := rules.NewRegistry()

	source, err := buildSource(cmd, flags, registry)
	if err != nil {
		return err
	}

	analyzer := engine.NewAnalyzer(
		goldmarkparser.New(flags.flavor),
		registry,
		engine.WithSource(source),
	)

	result, err := runner.New(analyzer).Run(ctx, runner.Options{
		Paths:        args,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
		Fix:          flags.fix,
		DryRun:       flags.dryRun,
	})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	renderResult(cmd, result)

	for _, file := range result.Files {
		if file.Error != nil {
			logger.Error("file failed",
				logging.FieldPath, file.Path,
				logging.FieldError, file.Error,
			)
		}
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return &IssuesError{Code: code}
	}
	return nil
}

// buildSource layers CLI overrides over the config file.
func buildSource(cmd *cobra.Command, flags *checkFlags, registry *engine.Registry) (engine.Source, error) {
	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = defaultConfigFile
	}

	fileSource := configsource.NewFileSource(configPath, registry)
	if err := fileSource.Reload(); err != nil {
		if explicit {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logging.Default().Warn("ignoring unreadable config",
			logging.FieldPath, configPath,
			logging.FieldError, err,
		)
	}

	overrides := configsource.NewMapSource(registry)
	for _, key := range flags.disable {
		overrides.Set(key, "false")
	}
	for _, pair := range flags.set {
		rule, value, ok := splitOverride(pair)
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected RULE=VALUE", pair)
		}
		overrides.Set(rule, value)
	}

	return configsource.NewLayered(overrides, fileSource), nil
}

func splitOverride(pair string) (rule, value string, ok bool) {
	for i := 0; i < len(pair); i++ {
		if pair[i] == '=' {
			if i == 0 || i == len(pair)-1 {
				return "", "", false
			}
			return pair[:i], pair[i+1:], true
		}
	}
	return "", "", false
}

func renderResult(cmd *cobra.Command, result *runner.Result) {
	colorMode, _ := cmd.Flags().GetString("color")
	out := cmd.OutOrStdout()

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
	styles.Width = pretty.TerminalWidth(out, 0)

	for _, file := range result.Files {
		lines := sourceLines(file)
		for _, v := range file.Violations {
			fmt.Fprint(out, styles.FormatViolation(file.Path, v, lineAt(lines, v.Line)))
		}
	}
	fmt.Fprint(out, styles.FormatSummary(result.Stats))
}

// sourceLines reads the file behind a report for context rendering.
// Reports with unwritten fixes are skipped: their violations refer to
// the fixed content, not what is on disk.
func sourceLines(file runner.FileReport) []string {
	if len(file.Violations) == 0 || (file.FixedCount > 0 && !file.Written) {
		return nil
	}
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil
	}
	return strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
}

func lineAt(lines []string, number int) string {
	if number < 1 || number > len(lines) {
		return ""
	}
	return lines[number-1]
}
