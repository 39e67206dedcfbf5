package cli

import "github.com/yaklabco/marklint/pkg/runner"

// Exit codes for marklint.
const (
	// ExitSuccess indicates no reportable issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates error-severity violations remain.
	ExitIssuesFound = 1

	// ExitWarnings indicates warnings remain under --strict.
	ExitWarnings = 2

	// ExitConfigError indicates a configuration problem.
	ExitConfigError = 65

	// ExitInternalError indicates an internal failure.
	ExitInternalError = 70
)

// IssuesError signals that a run completed normally but issues remain.
// It carries the exit code so main can report it without logging an
// error.
type IssuesError struct {
	Code int
}

func (e *IssuesError) Error() string {
	return "issues found"
}

// ExitCodeFromResult maps a run result to a process exit code.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.BySeverity["error"] > 0 {
		return ExitIssuesFound
	}
	if strict && result.Stats.BySeverity["warning"] > 0 {
		return ExitWarnings
	}
	return ExitSuccess
}
