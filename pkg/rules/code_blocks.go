package rules

import (
	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/fix"
	"github.com/yaklabco/marklint/pkg/langdetect"
)

// FencedCodeLanguageRule checks that fenced code blocks declare a
// language.
type FencedCodeLanguageRule struct {
	engine.BaseRule
}

// NewFencedCodeLanguageRule creates the MD040 rule.
func NewFencedCodeLanguageRule() *FencedCodeLanguageRule {
	return &FencedCodeLanguageRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD040",
			RuleName:        "fenced-code-language",
			RuleDescription: "Fenced code blocks should declare a language",
			RuleHelpURL:     ruleDocURL("md040"),
			Fixable:         true,
		},
	}
}

// Check flags fenced blocks with no info string. The fix inserts a
// language detected from the block's content; when detection is
// inconclusive the violation is reported without a fix.
func (r *FencedCodeLanguageRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	var violations []engine.Violation

	for _, block := range rctx.Index.CodeBlocks() {
		if block.Code == nil || !block.Code.Fenced || block.Code.Info != "" {
			continue
		}

		fenceLine := rctx.Index.NodeStartLine(block)
		if fenceLine == 0 {
			continue
		}

		v := rctx.NewViolation(r, fenceLine, 1, 1, "Fenced code block has no language")

		detected := langdetect.Detect(fencedContent(rctx, block, fenceLine))
		if detected != langdetect.Fallback {
			info, ok := rctx.Index.LineRange(fenceLine)
			if ok {
				v.FixDescription = "Add language " + detected
				builder := fix.NewEditBuilder()
				builder.Insert(info.NewlineStart, detected)
				v.FixEdits = builder.Edits
			}
		}

		violations = append(violations, v)
	}

	return violations, nil
}

// fencedContent returns the code between the fences, excluding the
// fence lines themselves.
func fencedContent(rctx *engine.RuleContext, block *document.Node, fenceLine int) []byte {
	endLine := rctx.Index.NodeEndLine(block)
	if endLine <= fenceLine+1 {
		return nil
	}

	first, ok := rctx.Index.LineRange(fenceLine + 1)
	if !ok {
		return nil
	}
	last, ok := rctx.Index.LineRange(endLine - 1)
	if !ok || last.EndOffset < first.StartOffset {
		return nil
	}
	return rctx.Index.Content()[first.StartOffset:last.EndOffset]
}
