package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/marklint/pkg/engine"
)

// LineLengthRule checks maximum line length.
type LineLengthRule struct {
	engine.BaseRule
}

// NewLineLengthRule creates the MD013 rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD013",
			RuleName:        "line-length",
			RuleDescription: "Lines should not exceed the configured length",
			RuleHelpURL:     ruleDocURL("md013"),
		},
	}
}

// Check flags lines longer than line_length characters. The
// code_blocks and headings parameters exempt those line types when set
// to false. Length counts runes, not bytes.
func (r *LineLengthRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	limit := rctx.Config.Int("line_length", 80)
	if limit < 1 {
		return nil, nil
	}
	checkCode := rctx.Config.Bool("code_blocks", true)
	checkHeadings := rctx.Config.Bool("headings", true)

	headingLines := map[int]bool{}
	if !checkHeadings {
		for _, h := range rctx.Index.Headings() {
			headingLines[rctx.Index.NodeStartLine(h)] = true
		}
	}

	var violations []engine.Violation

	for line := 1; line <= rctx.Index.LineCount(); line++ {
		if rctx.Cancelled() {
			return nil, rctx.Ctx.Err()
		}
		if !checkCode && rctx.Index.InCodeBlock(line) {
			continue
		}
		if !checkHeadings && headingLines[line] {
			continue
		}

		text := rctx.Index.Line(line)
		length := utf8.RuneCount(text)
		if length <= limit {
			continue
		}

		v := rctx.NewViolation(r, line, limit+1, length+1,
			fmt.Sprintf("Line length %d exceeds %d characters", length, limit))
		violations = append(violations, v)
	}

	return violations, nil
}
