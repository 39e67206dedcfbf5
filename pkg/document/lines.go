package document

import "sort"

// LineInfo holds byte-range metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// buildLines constructs line metadata from content.
// Handles both LF and CRLF line endings.
func buildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, ch := range content {
		if ch == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (ix *Index) LineCount() int {
	return len(ix.lines)
}

// Line returns the content of the 1-based line number, excluding the
// newline. Out-of-range line numbers return an empty slice.
func (ix *Index) Line(line int) []byte {
	if line < 1 || line > len(ix.lines) {
		return nil
	}
	info := ix.lines[line-1]
	return ix.content[info.StartOffset:info.NewlineStart]
}

// LineRange returns the byte range metadata for a 1-based line number.
// Returns (LineInfo{}, false) when out of range.
func (ix *Index) LineRange(line int) (LineInfo, bool) {
	if line < 1 || line > len(ix.lines) {
		return LineInfo{}, false
	}
	return ix.lines[line-1], true
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes. Returns (0, 0) for negative offsets on an empty
// document; offsets past the end map to the end of the last line.
func (ix *Index) LineAt(offset int) (int, int) {
	if offset < 0 || len(ix.lines) == 0 {
		return 0, 0
	}

	if offset >= len(ix.content) {
		last := ix.lines[len(ix.lines)-1]
		return len(ix.lines), offset - last.StartOffset + 1
	}

	lineIdx := sort.Search(len(ix.lines), func(i int) bool {
		return ix.lines[i].EndOffset > offset
	})
	if lineIdx >= len(ix.lines) {
		lineIdx = len(ix.lines) - 1
	}

	info := ix.lines[lineIdx]
	if offset < info.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// Returns (offset, true) on success, or (0, false) when out of range.
func (ix *Index) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(ix.lines) || col < 1 {
		return 0, false
	}

	info := ix.lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}
