package rules

import (
	"fmt"

	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/fix"
)

// HeadingIncrementRule checks that heading levels increment by one.
type HeadingIncrementRule struct {
	engine.BaseRule
}

// NewHeadingIncrementRule creates the MD001 rule.
func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD001",
			RuleName:        "heading-increment",
			RuleDescription: "Heading levels should only increment by one level at a time",
			RuleHelpURL:     ruleDocURL("md001"),
		},
	}
}

// Check flags headings that skip levels. The expected level starts at
// one and grows by at most one per heading; a violating heading does
// not raise it past that, so later headings are still measured against
// the level the document should have reached.
func (r *HeadingIncrementRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	var violations []engine.Violation

	prevLevel := 0
	for _, heading := range rctx.Index.Headings() {
		level := heading.HeadingLevel
		if allowed := prevLevel + 1; level > allowed {
			line, col := rctx.Index.NodePositionStart(heading)
			msg := fmt.Sprintf("Heading level %d follows level %d; expected level %d or lower",
				level, prevLevel, allowed)
			if prevLevel == 0 {
				msg = fmt.Sprintf("First heading is level %d; expected level 1", level)
			}
			violations = append(violations, rctx.NewViolation(r, line, col, col+level, msg))
			level = allowed
		}
		prevLevel = level
	}

	return violations, nil
}

// BlanksAroundHeadingsRule checks that headings are surrounded by blank
// lines.
type BlanksAroundHeadingsRule struct {
	engine.BaseRule
}

// NewBlanksAroundHeadingsRule creates the MD022 rule.
func NewBlanksAroundHeadingsRule() *BlanksAroundHeadingsRule {
	return &BlanksAroundHeadingsRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD022",
			RuleName:        "blanks-around-headings",
			RuleDescription: "Headings should be surrounded by blank lines",
			RuleHelpURL:     ruleDocURL("md022"),
			Fixable:         true,
		},
	}
}

// Check verifies blank lines above and below each heading. The
// lines_above and lines_below parameters set the required counts.
func (r *BlanksAroundHeadingsRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	linesAbove := rctx.Config.Int("lines_above", 1)
	linesBelow := rctx.Config.Int("lines_below", 1)

	var violations []engine.Violation

	for _, heading := range rctx.Index.Headings() {
		startLine := rctx.Index.NodeStartLine(heading)
		endLine := rctx.Index.NodeEndLine(heading)
		if startLine == 0 {
			continue
		}

		if v, ok := r.checkAbove(rctx, heading, startLine, linesAbove); ok {
			violations = append(violations, v)
		}
		if v, ok := r.checkBelow(rctx, heading, endLine, linesBelow); ok {
			violations = append(violations, v)
		}
	}

	return violations, nil
}

func (r *BlanksAroundHeadingsRule) checkAbove(rctx *engine.RuleContext, heading *document.Node, startLine, required int) (engine.Violation, bool) {
	if required < 1 || startLine <= 1 {
		return engine.Violation{}, false
	}
	// Headings directly under front matter need no separation.
	if rctx.Index.InFrontMatter(startLine - 1) {
		return engine.Violation{}, false
	}
	have := rctx.Index.CountBlankLinesBefore(startLine)
	if have >= required {
		return engine.Violation{}, false
	}

	_, col := rctx.Index.NodePositionStart(heading)
	v := rctx.NewViolation(r, startLine, col, col+1,
		fmt.Sprintf("Expected %d blank line(s) above heading, found %d", required, have))
	v.FixDescription = "Insert blank line above heading"

	if info, ok := rctx.Index.LineRange(startLine); ok {
		builder := fix.NewEditBuilder()
		builder.InsertBlankLineBefore(info.StartOffset, startLine)
		v.FixEdits = builder.Edits
	}
	return v, true
}

func (r *BlanksAroundHeadingsRule) checkBelow(rctx *engine.RuleContext, heading *document.Node, endLine, required int) (engine.Violation, bool) {
	if required < 1 || endLine == 0 || endLine >= rctx.Index.LineCount() {
		return engine.Violation{}, false
	}
	have := rctx.Index.CountBlankLinesAfter(endLine)
	if have >= required {
		return engine.Violation{}, false
	}

	_, col := rctx.Index.NodePositionStart(heading)
	startLine := rctx.Index.NodeStartLine(heading)
	v := rctx.NewViolation(r, startLine, col, col+1,
		fmt.Sprintf("Expected %d blank line(s) below heading, found %d", required, have))
	v.FixDescription = "Insert blank line below heading"

	if info, ok := rctx.Index.LineRange(endLine + 1); ok {
		builder := fix.NewEditBuilder()
		builder.InsertBlankLineBefore(info.StartOffset, endLine+1)
		v.FixEdits = builder.Edits
	}
	return v, true
}
