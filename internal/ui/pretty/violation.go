package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/engine"
)

// FormatViolation renders one violation as a terminal line, optionally
// followed by the offending source line with a caret marker.
func (s *Styles) FormatViolation(path string, v engine.Violation, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path), v.Line, v.ColumnStart)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(v.Severity),
		s.Message.Render(v.Message),
		s.RuleID.Render("("+v.RuleID+")"),
	))

	if sourceLine != "" {
		builder.WriteString(s.formatSourceContext(sourceLine, v.ColumnStart))
	}

	if v.FixDescription != "" {
		builder.WriteString("    " + s.Dim.Render("Fix:") + " " +
			s.FixHint.Render(v.FixDescription) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity label.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeveritySuggestion:
		return s.Suggestion.Render("suggestion")
	default:
		return string(sev)
	}
}

func (s *Styles) formatSourceContext(line string, column int) string {
	const indent = "        "

	line = s.truncate(line, len(indent))

	var builder strings.Builder
	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if column > 0 && column <= len(line)+1 {
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}
	return builder.String()
}

// truncate cuts line to the style's width budget, reserving used
// columns for the indent. A cut is marked with an ellipsis.
func (s *Styles) truncate(line string, used int) string {
	if s.Width <= 0 {
		return line
	}
	budget := s.Width - used
	if budget < 1 || len(line) <= budget {
		return line
	}
	runes := []rune(line)
	if len(runes) <= budget {
		return line
	}
	return string(runes[:budget-1]) + "…"
}

// FormatFileHeader renders a file path header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
