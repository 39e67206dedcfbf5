// Package fix converts violations into a conflict-free, offset-safe
// batch of text edits and applies them as one transaction.
package fix

import "fmt"

// EditKind classifies a text edit.
type EditKind uint8

const (
	KindInsert EditKind = iota
	KindReplace
	KindDelete
)

// BoundaryID identifies a logical insertion point shared by edits from
// different rules, used to deduplicate competing blank-line insertions.
type BoundaryID string

// BlankLineBefore returns the boundary key for inserting a blank line
// immediately before the given original 1-based line number. A "blank
// line after line N" fix must use BlankLineBefore(N+1) so that
// competing fixes targeting the same physical boundary collide.
func BlankLineBefore(line int) BoundaryID {
	return BoundaryID(fmt.Sprintf("blank-before:%d", line))
}

// TextEdit represents a single text mutation against the original
// document snapshot. Offsets always refer to the unmodified text.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	// Equal to StartOffset for pure insertions.
	EndOffset int

	// NewText is the replacement text. Empty for pure deletions.
	NewText string

	// Boundary optionally names the logical insertion point this edit
	// claims. Only blank-line insertions set it.
	Boundary BoundaryID
}

// Kind derives the edit kind from its range and replacement.
func (e TextEdit) Kind() EditKind {
	switch {
	case e.StartOffset == e.EndOffset:
		return KindInsert
	case e.NewText == "":
		return KindDelete
	default:
		return KindReplace
	}
}

// EditBuilder accumulates text edits for one violation's fix.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{Edits: make([]TextEdit, 0, 1)}
}

// ReplaceRange adds an edit replacing bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit inserting text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit deleting bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// InsertBlankLineBefore adds a newline insertion at offset claiming the
// boundary before the given original line.
func (b *EditBuilder) InsertBlankLineBefore(offset, line int) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: offset,
		EndOffset:   offset,
		NewText:     "\n",
		Boundary:    BlankLineBefore(line),
	})
}
