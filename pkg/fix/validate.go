package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit with an invalid range.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// validateEdits checks that all edits have valid ranges for the given
// content length. Returns the first invalid edit found.
func validateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// sortAscending orders edits by start offset, then end offset. Stable,
// so edits at the same position keep their submission order; boundary
// claiming depends on that.
func sortAscending(edits []TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// dedupeBoundaries drops edits whose boundary key was already claimed
// by an earlier edit. Edits without a boundary pass through.
func dedupeBoundaries(edits []TextEdit) (kept, dropped []TextEdit) {
	claimed := make(map[BoundaryID]struct{})

	for _, edit := range edits {
		if edit.Boundary == "" {
			kept = append(kept, edit)
			continue
		}
		if _, taken := claimed[edit.Boundary]; taken {
			dropped = append(dropped, edit)
			continue
		}
		claimed[edit.Boundary] = struct{}{}
		kept = append(kept, edit)
	}

	return kept, dropped
}

// mergeOverlaps resolves overlapping ranges in an ascending-sorted
// slice. Overlapping pure deletions merge into one deletion covering
// the union; any other overlap keeps the earlier edit and drops the
// later one.
func mergeOverlaps(edits []TextEdit) (kept, dropped []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	current := edits[0]
	for _, edit := range edits[1:] {
		if edit.StartOffset >= current.EndOffset {
			kept = append(kept, current)
			current = edit
			continue
		}

		if current.NewText == "" && edit.NewText == "" {
			if edit.EndOffset > current.EndOffset {
				current.EndOffset = edit.EndOffset
			}
			continue
		}

		dropped = append(dropped, edit)
	}
	kept = append(kept, current)

	return kept, dropped
}
