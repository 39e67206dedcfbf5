package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/runner"
)

// FormatSummary renders run statistics as a single line, e.g.
// "4 issues (1 error, 3 warnings) in 2 files, 3 fixable".
func (s *Styles) FormatSummary(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.ViolationsFixed > 0 {
			msg += ", " + s.Success.Render(fmt.Sprintf("%d fixed in %s",
				stats.ViolationsFixed, pluralFiles(stats.FilesModified)))
		}
		return msg + "\n"
	}

	var severityParts []string
	if n := stats.BySeverity["error"]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(plural(n, "error", "errors")))
	}
	if n := stats.BySeverity["warning"]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(plural(n, "warning", "warnings")))
	}
	if n := stats.BySeverity["suggestion"]; n > 0 {
		severityParts = append(severityParts, s.Suggestion.Render(plural(n, "suggestion", "suggestions")))
	}

	line := plural(stats.ViolationsTotal, "issue", "issues")
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	line += " in " + pluralFiles(stats.FilesWithIssues)

	if stats.ViolationsFixed > 0 {
		line += ", " + s.Success.Render(fmt.Sprintf("%d fixed", stats.ViolationsFixed))
	}
	if stats.ViolationsFixable > 0 {
		line += ", " + s.FixHint.Render(fmt.Sprintf("%d fixable", stats.ViolationsFixable))
	}

	return line + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func pluralFiles(n int) string {
	return plural(n, "file", "files")
}
