package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/runner"
)

func TestFormatViolation(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	v := engine.Violation{
		RuleID:         "MD009",
		Line:           3,
		ColumnStart:    8,
		Message:        "Trailing whitespace",
		Severity:       config.SeverityWarning,
		FixDescription: "Remove trailing whitespace",
	}

	out := styles.FormatViolation("docs/readme.md", v, "trailing ")

	assert.Contains(t, out, "docs/readme.md:3:8")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "Trailing whitespace")
	assert.Contains(t, out, "(MD009)")
	assert.Contains(t, out, "Fix: Remove trailing whitespace")

	// Caret lands under column 8.
	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
		}
	}
	assert.Equal(t, strings.Repeat(" ", 8+7)+"^", caretLine)
}

func TestFormatViolation_TruncatesLongSourceLines(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	styles.Width = 40
	v := engine.Violation{
		RuleID:      "MD013",
		Line:        1,
		ColumnStart: 81,
		Message:     "Line too long",
		Severity:    config.SeverityWarning,
	}

	out := styles.FormatViolation("doc.md", v, strings.Repeat("x", 120))

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", 40))
	// Caret past the truncated line is dropped.
	assert.NotContains(t, out, "^")
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "suggestion", styles.FormatSeverity(config.SeveritySuggestion))
}

func TestFormatSummary_Clean(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	out := styles.FormatSummary(runner.Stats{FilesProcessed: 4})
	assert.Contains(t, out, "No issues found")
	assert.Contains(t, out, "4 files checked")
}

func TestFormatSummary_WithIssues(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	out := styles.FormatSummary(runner.Stats{
		FilesProcessed:    3,
		FilesWithIssues:   2,
		ViolationsTotal:   4,
		ViolationsFixable: 3,
		BySeverity:        map[string]int{"error": 1, "warning": 3},
	})

	assert.Contains(t, out, "4 issues")
	assert.Contains(t, out, "1 error")
	assert.Contains(t, out, "3 warnings")
	assert.Contains(t, out, "in 2 files")
	assert.Contains(t, out, "3 fixable")
}

func TestIsColorEnabled(t *testing.T) {
	assert.True(t, IsColorEnabled("always", nil))
	assert.False(t, IsColorEnabled("never", nil))
	assert.False(t, IsColorEnabled("auto", &strings.Builder{}))
}
