package document

import (
	"bytes"
	"strings"
)

// LineClass is the per-line classification computed once per document
// version. Immutable after the Index is built.
type LineClass struct {
	// InFrontMatter is true for lines inside (and delimiting) a leading
	// YAML front matter block.
	InFrontMatter bool

	// InCodeBlock is true for lines inside a fenced code block,
	// including the fence lines themselves.
	InCodeBlock bool

	// Blank is true for lines containing only whitespace.
	Blank bool

	// Language is the fence info language tag for code block lines,
	// empty when unknown.
	Language string
}

// classifyLines performs a single scan over the lines, tracking front
// matter and fenced code block state.
func classifyLines(content []byte, lines []LineInfo) []LineClass {
	classes := make([]LineClass, len(lines))

	inFrontMatter := false
	inCode := false
	var fenceMarker byte
	var fenceLen int
	var language string

	for i, info := range lines {
		text := content[info.StartOffset:info.NewlineStart]
		trimmed := bytes.TrimSpace(text)
		classes[i].Blank = len(trimmed) == 0

		// Front matter: only a "---" on the very first line opens it.
		if i == 0 && bytes.Equal(trimmed, []byte("---")) {
			inFrontMatter = true
			classes[i].InFrontMatter = true
			continue
		}
		if inFrontMatter {
			classes[i].InFrontMatter = true
			if bytes.Equal(trimmed, []byte("---")) || bytes.Equal(trimmed, []byte("...")) {
				inFrontMatter = false
			}
			continue
		}

		if inCode {
			classes[i].InCodeBlock = true
			classes[i].Language = language
			if isClosingFence(trimmed, fenceMarker, fenceLen) {
				inCode = false
				language = ""
			}
			continue
		}

		if marker, length, info := openingFence(trimmed); marker != 0 {
			inCode = true
			fenceMarker = marker
			fenceLen = length
			language = fenceLanguage(info)
			classes[i].InCodeBlock = true
			classes[i].Language = language
		}
	}

	return classes
}

// openingFence returns the fence marker, its length, and the info string
// if the line opens a fenced code block; marker is 0 otherwise.
func openingFence(trimmed []byte) (byte, int, string) {
	if len(trimmed) < 3 {
		return 0, 0, ""
	}

	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return 0, 0, ""
	}

	length := 0
	for length < len(trimmed) && trimmed[length] == marker {
		length++
	}
	if length < 3 {
		return 0, 0, ""
	}

	info := string(bytes.TrimSpace(trimmed[length:]))

	// A backtick fence info string must not contain backticks.
	if marker == '`' && strings.ContainsRune(info, '`') {
		return 0, 0, ""
	}

	return marker, length, info
}

// isClosingFence reports whether the line closes a fence opened with the
// given marker and length. A closing fence has no info string and at
// least as many marker characters as the opener.
func isClosingFence(trimmed []byte, marker byte, minLen int) bool {
	if len(trimmed) < minLen {
		return false
	}
	for _, ch := range trimmed {
		if ch != marker {
			return false
		}
	}
	return true
}

// fenceLanguage extracts the language tag from a fence info string.
// The tag is the first whitespace-separated word, lowercased.
func fenceLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
