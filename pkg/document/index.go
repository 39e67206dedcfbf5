package document

import "bytes"

// Index is an immutable view of one Markdown document version: raw
// content, line metadata, per-line classification, and the structural
// node tree sourced from the external parser.
//
// All queries are side-effect free; an Index built from unchanged text
// yields identical results on repeated calls.
type Index struct {
	path    string
	content []byte
	lines   []LineInfo
	classes []LineClass
	root    *Node
}

// NewIndex builds an Index for content. The root node tree is optional;
// rules that only need line queries work without it.
func NewIndex(path string, content []byte, root *Node) *Index {
	cp := make([]byte, len(content))
	copy(cp, content)

	lines := buildLines(cp)

	return &Index{
		path:    path,
		content: cp,
		lines:   lines,
		classes: classifyLines(cp, lines),
		root:    root,
	}
}

// Path returns the source path (may be empty for in-memory content).
func (ix *Index) Path() string {
	return ix.path
}

// Content returns the raw document bytes. Callers must not mutate it.
func (ix *Index) Content() []byte {
	return ix.content
}

// Root returns the structural tree root, or nil if no parse tree was
// supplied.
func (ix *Index) Root() *Node {
	return ix.root
}

// Classification returns the per-line classification for a 1-based line
// number. Out-of-range lines return the zero LineClass.
func (ix *Index) Classification(line int) LineClass {
	if line < 1 || line > len(ix.classes) {
		return LineClass{}
	}
	return ix.classes[line-1]
}

// IsBlank returns true if the line contains only whitespace.
// Out-of-range lines report false.
func (ix *Index) IsBlank(line int) bool {
	return ix.Classification(line).Blank
}

// InCodeBlock returns true if the line is inside a fenced code block.
func (ix *Index) InCodeBlock(line int) bool {
	return ix.Classification(line).InCodeBlock
}

// InFrontMatter returns true if the line is inside leading front matter.
func (ix *Index) InFrontMatter(line int) bool {
	return ix.Classification(line).InFrontMatter
}

// CodeLanguage returns the fence language tag for a code block line,
// or "" when the line is not in a code block or the tag is unknown.
func (ix *Index) CodeLanguage(line int) string {
	return ix.Classification(line).Language
}

// NodePosition returns the 1-based (startLine, startCol, endLine, endCol)
// for a node's byte range. Nodes without a range report zeros.
func (ix *Index) NodePosition(n *Node) (int, int, int, int) {
	if n == nil || !n.HasRange() {
		return 0, 0, 0, 0
	}
	startLine, startCol := ix.LineAt(n.Start)
	endLine, endCol := ix.LineAt(max(n.Start, n.End-1))
	return startLine, startCol, endLine, endCol
}

// NodeStartLine returns the 1-based line a node starts on, or 0.
func (ix *Index) NodeStartLine(n *Node) int {
	line, _ := ix.NodePositionStart(n)
	return line
}

// NodePositionStart returns the 1-based (line, column) a node starts at.
func (ix *Index) NodePositionStart(n *Node) (int, int) {
	if n == nil || !n.HasRange() {
		return 0, 0
	}
	return ix.LineAt(n.Start)
}

// NodeEndLine returns the 1-based line a node ends on, or 0.
func (ix *Index) NodeEndLine(n *Node) int {
	if n == nil || !n.HasRange() {
		return 0
	}
	line, _ := ix.LineAt(max(n.Start, n.End-1))
	return line
}

// Structural enumerators.

// Headings returns all heading nodes in document order.
func (ix *Index) Headings() []*Node {
	return FindByKind(ix.root, KindHeading)
}

// Lists returns all list nodes in document order.
func (ix *Index) Lists() []*Node {
	return FindByKind(ix.root, KindList)
}

// CodeBlocks returns all code block nodes in document order.
func (ix *Index) CodeBlocks() []*Node {
	return FindByKind(ix.root, KindCodeBlock)
}

// Links returns all link nodes in document order.
func (ix *Index) Links() []*Node {
	return FindByKind(ix.root, KindLink)
}

// Images returns all image nodes in document order.
func (ix *Index) Images() []*Node {
	return FindByKind(ix.root, KindImage)
}

// Tables returns all table nodes in document order.
func (ix *Index) Tables() []*Node {
	return FindByKind(ix.root, KindTable)
}

// ThematicBreaks returns all thematic break nodes in document order.
func (ix *Index) ThematicBreaks() []*Node {
	return FindByKind(ix.root, KindThematicBreak)
}

// Line helpers shared by rules.

// HasTrailingWhitespace returns true if the line ends in spaces or tabs.
func (ix *Index) HasTrailingWhitespace(line int) bool {
	text := ix.Line(line)
	if len(text) == 0 {
		return false
	}
	last := text[len(text)-1]
	return last == ' ' || last == '\t'
}

// TrailingWhitespaceRange returns the byte range of trailing whitespace
// on a line, or (-1, -1) when there is none.
func (ix *Index) TrailingWhitespaceRange(line int) (int, int) {
	info, ok := ix.LineRange(line)
	if !ok {
		return -1, -1
	}

	text := ix.content[info.StartOffset:info.NewlineStart]
	start := info.NewlineStart
	for idx := len(text) - 1; idx >= 0; idx-- {
		if text[idx] != ' ' && text[idx] != '\t' {
			break
		}
		start = info.StartOffset + idx
	}

	if start == info.NewlineStart {
		return -1, -1
	}
	return start, info.NewlineStart
}

// CountBlankLinesBefore counts consecutive blank lines before a line.
func (ix *Index) CountBlankLinesBefore(line int) int {
	count := 0
	for ln := line - 1; ln >= 1; ln-- {
		if !ix.IsBlank(ln) {
			break
		}
		count++
	}
	return count
}

// CountBlankLinesAfter counts consecutive blank lines after a line.
func (ix *Index) CountBlankLinesAfter(line int) int {
	count := 0
	for ln := line + 1; ln <= len(ix.lines); ln++ {
		if !ix.IsBlank(ln) {
			break
		}
		count++
	}
	return count
}

// NodeText returns the source text for a node's byte range.
func (ix *Index) NodeText(n *Node) []byte {
	if n == nil || !n.HasRange() || n.End > len(ix.content) {
		return nil
	}
	return ix.content[n.Start:n.End]
}

// PlainText extracts the concatenated text content of a node's
// descendants.
func (ix *Index) PlainText(n *Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	//nolint:errcheck // visitor never returns an error
	Walk(n, func(node *Node) error {
		if node.Kind == KindText {
			buf.Write(node.Text)
		}
		return nil
	})
	return buf.String()
}
