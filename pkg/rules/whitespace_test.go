package rules_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/marklint/pkg/rules"
)

func TestTrailingSpaces(t *testing.T) {
	t.Parallel()

	rule := rules.NewTrailingSpacesRule()

	violations := check(t, rule, "clean\ndirty \nalso\t\n", nil)
	wantLines(t, violations, 2, 3)

	fixed := applyFixes(t, violations, "clean\ndirty \nalso\t\n")
	if fixed != "clean\ndirty\nalso\n" {
		t.Errorf("fixed = %q", fixed)
	}
}

func TestTrailingSpaces_HardBreakAllowed(t *testing.T) {
	t.Parallel()

	rule := rules.NewTrailingSpacesRule()

	// Exactly two trailing spaces is a Markdown hard break.
	violations := check(t, rule, "break  \nthree   \n", nil)
	wantLines(t, violations, 2)

	// br_spaces of 3 moves the allowance.
	violations = check(t, rule, "break  \nthree   \n", map[string]string{"br_spaces": "3"})
	wantLines(t, violations, 1)

	// Below 2 the exception is off entirely.
	violations = check(t, rule, "break  \n", map[string]string{"br_spaces": "1"})
	wantLines(t, violations, 1)

	violations = check(t, rule, "break  \n", map[string]string{"br_spaces": "0"})
	wantLines(t, violations, 1)
}

func TestTrailingSpaces_IgnoreCodeBlocks(t *testing.T) {
	t.Parallel()

	rule := rules.NewTrailingSpacesRule()
	content := "```\ncode \n```\ntext \n"

	violations := check(t, rule, content, map[string]string{"ignore_code_blocks": "true"})
	wantLines(t, violations, 4)

	violations = check(t, rule, content, nil)
	wantLines(t, violations, 2, 4)
}

func TestHardTabs(t *testing.T) {
	t.Parallel()

	rule := rules.NewHardTabsRule()
	content := "no tabs\n\tindented\nmid\ttab\n"

	violations := check(t, rule, content, nil)
	wantLines(t, violations, 2, 3)

	fixed := applyFixes(t, violations, content)
	if fixed != "no tabs\n indented\nmid tab\n" {
		t.Errorf("fixed = %q", fixed)
	}

	fixed = applyFixes(t, check(t, rule, content, map[string]string{"spaces_per_tab": "4"}), content)
	if fixed != "no tabs\n    indented\nmid    tab\n" {
		t.Errorf("fixed with spaces_per_tab=4 = %q", fixed)
	}
}

func TestHardTabs_CodeBlocksParam(t *testing.T) {
	t.Parallel()

	rule := rules.NewHardTabsRule()
	content := "```\n\tcode\n```\n\ttext\n"

	violations := check(t, rule, content, map[string]string{"code_blocks": "false"})
	wantLines(t, violations, 4)
}

func TestMultipleBlanks(t *testing.T) {
	t.Parallel()

	rule := rules.NewMultipleBlanksRule()
	content := "a\n\n\n\nb\n"

	violations := check(t, rule, content, nil)
	wantLines(t, violations, 3)

	fixed := applyFixes(t, violations, content)
	if fixed != "a\n\nb\n" {
		t.Errorf("fixed = %q", fixed)
	}

	// maximum=2 tolerates two blanks.
	violations = check(t, rule, "a\n\n\nb\n", map[string]string{"maximum": "2"})
	wantLines(t, violations)
}

func TestMultipleBlanks_SkipsCodeBlocks(t *testing.T) {
	t.Parallel()

	rule := rules.NewMultipleBlanksRule()
	content := "```\nx\n\n\n\ny\n```\n"

	violations := check(t, rule, content, nil)
	wantLines(t, violations)
}

func TestFinalNewline_Missing(t *testing.T) {
	t.Parallel()

	rule := rules.NewFinalNewlineRule()
	content := "text"

	violations := check(t, rule, content, nil)
	wantLines(t, violations, 1)

	if fixed := applyFixes(t, violations, content); fixed != "text\n" {
		t.Errorf("fixed = %q", fixed)
	}
}

func TestFinalNewline_Multiple(t *testing.T) {
	t.Parallel()

	rule := rules.NewFinalNewlineRule()
	content := "text\n\n\n"

	violations := check(t, rule, content, nil)
	if len(violations) != 1 {
		t.Fatalf("got %d violations", len(violations))
	}

	if fixed := applyFixes(t, violations, content); fixed != "text\n" {
		t.Errorf("fixed = %q", fixed)
	}
}

func TestFinalNewline_CleanAndEmpty(t *testing.T) {
	t.Parallel()

	rule := rules.NewFinalNewlineRule()
	wantLines(t, check(t, rule, "text\n", nil))
	wantLines(t, check(t, rule, "", nil))
	wantLines(t, check(t, rule, strings.Repeat("line\n", 3), nil))
}
