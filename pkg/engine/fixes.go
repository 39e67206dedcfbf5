package engine

import "github.com/yaklabco/marklint/pkg/fix"

// Fixable returns the subset of violations carrying fix edits.
func Fixable(violations []Violation) []Violation {
	var out []Violation
	for _, v := range violations {
		if v.HasFix() {
			out = append(out, v)
		}
	}
	return out
}

// BuildFixBatch collects the edits of all fixable violations into one
// batch for the given content snapshot. Violations must be in analysis
// order (sorted by line then column); that order decides which edit
// wins a contested boundary, keeping batch output deterministic and
// equal to applying each fix on its own.
func BuildFixBatch(violations []Violation, contentLen int) (*fix.Batch, error) {
	var edits []fix.TextEdit
	for _, v := range violations {
		edits = append(edits, v.FixEdits...)
	}
	return fix.NewBatch(edits, contentLen)
}
