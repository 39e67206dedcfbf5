package fix

import (
	"fmt"
	"sort"
)

// Batch is an ordered, validated set of text edits that is safe to
// apply against one snapshot of the original text. Edits are held in
// descending (offset) order: applying bottom-to-top, right-to-left
// guarantees no applied edit ever shifts the offsets of one still
// pending, since only earlier-in-text edits remain after each step.
type Batch struct {
	edits      []TextEdit
	dropped    []TextEdit
	contentLen int
}

// NewBatch validates raw edits against the snapshot length, drops
// duplicate boundary claims and overlapping ranges, and orders the
// survivors for bottom-to-top application.
//
// Boundary claiming is first-come-first-served in ascending text
// order, so a deterministic input order (violations sorted by line,
// then column) yields a deterministic batch.
func NewBatch(edits []TextEdit, contentLen int) (*Batch, error) {
	if err := validateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sortAscending(sorted)

	kept, droppedBoundary := dedupeBoundaries(sorted)
	kept, droppedOverlap := mergeOverlaps(kept)

	// Reverse into application order: descending start, then end.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].StartOffset != kept[j].StartOffset {
			return kept[i].StartOffset > kept[j].StartOffset
		}
		return kept[i].EndOffset > kept[j].EndOffset
	})

	return &Batch{
		edits:      kept,
		dropped:    append(droppedBoundary, droppedOverlap...),
		contentLen: contentLen,
	}, nil
}

// Edits returns the surviving edits in application order.
func (b *Batch) Edits() []TextEdit {
	return b.edits
}

// Dropped returns the edits removed by boundary or overlap dedup.
func (b *Batch) Dropped() []TextEdit {
	return b.dropped
}

// Len returns the number of edits that will be applied.
func (b *Batch) Len() int {
	return len(b.edits)
}

// Apply runs all edits against content as one transaction and returns
// the new text. The content must be the same snapshot the batch was
// built for; a length mismatch rejects the whole batch and the input
// is returned unmodified.
func (b *Batch) Apply(content []byte) ([]byte, error) {
	if len(content) != b.contentLen {
		return content, fmt.Errorf("batch built for %d bytes, buffer has %d: %w",
			b.contentLen, len(content), ErrStaleSnapshot)
	}
	if len(b.edits) == 0 {
		return content, nil
	}

	buf := make([]byte, len(content))
	copy(buf, content)

	// Bottom-to-top: every remaining edit addresses text strictly
	// before the region just modified.
	for _, e := range b.edits {
		tail := make([]byte, len(buf[e.EndOffset:]))
		copy(tail, buf[e.EndOffset:])
		buf = append(buf[:e.StartOffset], e.NewText...)
		buf = append(buf, tail...)
	}

	return buf, nil
}
