package rules

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/fix"
)

// TrailingSpacesRule checks for trailing whitespace on lines.
type TrailingSpacesRule struct {
	engine.BaseRule
}

// NewTrailingSpacesRule creates the MD009 rule.
func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD009",
			RuleName:        "no-trailing-spaces",
			RuleDescription: "Lines should not have trailing whitespace",
			RuleHelpURL:     ruleDocURL("md009"),
			Fixable:         true,
		},
	}
}

// Check flags trailing whitespace. The br_spaces parameter allows a run
// of exactly that many trailing spaces as a hard line break; values
// below 2 turn the exception off, since a Markdown hard break needs at
// least two spaces.
func (r *TrailingSpacesRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	brSpaces := rctx.Config.Int("br_spaces", 2)
	ignoreCode := rctx.Config.Bool("ignore_code_blocks", false)

	var violations []engine.Violation

	for line := 1; line <= rctx.Index.LineCount(); line++ {
		if rctx.Cancelled() {
			return nil, rctx.Ctx.Err()
		}
		if ignoreCode && rctx.Index.InCodeBlock(line) {
			continue
		}
		if !rctx.Index.HasTrailingWhitespace(line) {
			continue
		}

		start, end := rctx.Index.TrailingWhitespaceRange(line)
		if start < 0 {
			continue
		}

		if brSpaces >= 2 && isHardBreak(rctx.Index.Content()[start:end], brSpaces) {
			continue
		}

		info, _ := rctx.Index.LineRange(line)
		col := start - info.StartOffset + 1

		v := rctx.NewViolation(r, line, col, end-info.StartOffset+1, "Trailing whitespace")
		v.FixDescription = "Remove trailing whitespace"
		builder := fix.NewEditBuilder()
		builder.Delete(start, end)
		v.FixEdits = builder.Edits
		violations = append(violations, v)
	}

	return violations, nil
}

// isHardBreak reports whether ws is exactly n spaces (no tabs).
func isHardBreak(ws []byte, n int) bool {
	return len(ws) == n && !bytes.ContainsAny(ws, "\t")
}

// HardTabsRule checks for tab characters.
type HardTabsRule struct {
	engine.BaseRule
}

// NewHardTabsRule creates the MD010 rule.
func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD010",
			RuleName:        "no-hard-tabs",
			RuleDescription: "Hard tabs should be replaced with spaces",
			RuleHelpURL:     ruleDocURL("md010"),
			Fixable:         true,
		},
	}
}

// Check flags lines containing tabs. One violation per line; its fix
// replaces every tab on that line. The code_blocks parameter controls
// whether fenced code content is checked, spaces_per_tab sets the
// replacement width.
func (r *HardTabsRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	checkCode := rctx.Config.Bool("code_blocks", true)
	spacesPerTab := rctx.Config.Int("spaces_per_tab", 1)
	if spacesPerTab < 1 {
		spacesPerTab = 1
	}
	replacement := strings.Repeat(" ", spacesPerTab)

	var violations []engine.Violation

	for line := 1; line <= rctx.Index.LineCount(); line++ {
		if rctx.Cancelled() {
			return nil, rctx.Ctx.Err()
		}
		if !checkCode && rctx.Index.InCodeBlock(line) {
			continue
		}

		text := rctx.Index.Line(line)
		first := bytes.IndexByte(text, '\t')
		if first < 0 {
			continue
		}

		info, _ := rctx.Index.LineRange(line)
		builder := fix.NewEditBuilder()
		for idx, ch := range text {
			if ch == '\t' {
				builder.ReplaceRange(info.StartOffset+idx, info.StartOffset+idx+1, replacement)
			}
		}

		v := rctx.NewViolation(r, line, first+1, first+2, "Hard tab")
		v.FixDescription = "Replace tabs with spaces"
		v.FixEdits = builder.Edits
		violations = append(violations, v)
	}

	return violations, nil
}

// MultipleBlanksRule checks for runs of consecutive blank lines.
type MultipleBlanksRule struct {
	engine.BaseRule
}

// NewMultipleBlanksRule creates the MD012 rule.
func NewMultipleBlanksRule() *MultipleBlanksRule {
	return &MultipleBlanksRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD012",
			RuleName:        "no-multiple-blanks",
			RuleDescription: "Multiple consecutive blank lines should be collapsed",
			RuleHelpURL:     ruleDocURL("md012"),
			Fixable:         true,
		},
	}
}

// Check flags blank-line runs longer than the maximum parameter. Runs
// inside fenced code blocks are left alone.
func (r *MultipleBlanksRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	maximum := rctx.Config.Int("maximum", 1)
	if maximum < 1 {
		maximum = 1
	}

	var violations []engine.Violation

	lineCount := rctx.Index.LineCount()
	for line := 1; line <= lineCount; {
		if rctx.Cancelled() {
			return nil, rctx.Ctx.Err()
		}
		if !rctx.Index.IsBlank(line) || rctx.Index.InCodeBlock(line) {
			line++
			continue
		}

		runStart := line
		for line <= lineCount && rctx.Index.IsBlank(line) && !rctx.Index.InCodeBlock(line) {
			line++
		}
		runLen := line - runStart
		if runLen <= maximum {
			continue
		}

		firstExcess := runStart + maximum
		v := rctx.NewViolation(r, firstExcess, 1, 1,
			fmt.Sprintf("Expected at most %d blank line(s), found %d", maximum, runLen))
		v.FixDescription = "Remove extra blank lines"

		startInfo, _ := rctx.Index.LineRange(firstExcess)
		lastInfo, _ := rctx.Index.LineRange(runStart + runLen - 1)
		builder := fix.NewEditBuilder()
		builder.Delete(startInfo.StartOffset, lastInfo.EndOffset)
		v.FixEdits = builder.Edits
		violations = append(violations, v)
	}

	return violations, nil
}

// FinalNewlineRule checks that the document ends with a single newline.
type FinalNewlineRule struct {
	engine.BaseRule
}

// NewFinalNewlineRule creates the MD047 rule.
func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD047",
			RuleName:        "single-trailing-newline",
			RuleDescription: "Files should end with a single newline character",
			RuleHelpURL:     ruleDocURL("md047"),
			Fixable:         true,
		},
	}
}

// Check verifies the final bytes of the document.
func (r *FinalNewlineRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	content := rctx.Index.Content()
	if len(content) == 0 {
		return nil, nil
	}

	lastLine := rctx.Index.LineCount()

	if content[len(content)-1] != '\n' {
		info, _ := rctx.Index.LineRange(lastLine)
		col := info.NewlineStart - info.StartOffset + 1

		v := rctx.NewViolation(r, lastLine, col, col, "Missing trailing newline")
		v.FixDescription = "Add trailing newline"
		builder := fix.NewEditBuilder()
		builder.Insert(len(content), "\n")
		v.FixEdits = builder.Edits
		return []engine.Violation{v}, nil
	}

	// Count trailing newlines; more than one means extra blank lines at
	// end of file.
	end := len(content)
	for end > 0 && (content[end-1] == '\n' || content[end-1] == '\r') {
		end--
	}
	trailing := bytes.Count(content[end:], []byte("\n"))
	if trailing <= 1 {
		return nil, nil
	}

	// Keep exactly one newline sequence after the last non-blank line.
	keep := end
	for keep < len(content) && content[keep] == '\r' {
		keep++
	}
	if keep < len(content) && content[keep] == '\n' {
		keep++
	}

	line, col := rctx.Index.LineAt(keep)
	v := rctx.NewViolation(r, line, col, col, "Multiple trailing newlines")
	v.FixDescription = "Remove extra trailing newlines"
	builder := fix.NewEditBuilder()
	builder.Delete(keep, len(content))
	v.FixEdits = builder.Edits
	return []engine.Violation{v}, nil
}
