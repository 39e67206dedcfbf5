package goldmark

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/marklint/pkg/document"
)

// mapper converts a goldmark AST into a document.Node tree.
type mapper struct {
	content []byte
}

func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to a document.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *document.Node {
	doc := document.NewNode(document.KindDocument)
	doc.Start = 0
	doc.End = len(m.content)
	m.mapChildren(gmDoc, doc)
	return doc
}

func (m *mapper) mapChildren(gmParent ast.Node, parent *document.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapNode(child); node != nil {
			document.AppendChild(parent, node)
		}
	}
}

// mapNode converts a single goldmark node.
func (m *mapper) mapNode(gmNode ast.Node) *document.Node {
	var node *document.Node

	switch gmn := gmNode.(type) {
	case *ast.Heading:
		node = document.NewNode(document.KindHeading)
		node.HeadingLevel = gmn.Level
		m.mapChildren(gmNode, node)

	case *ast.Paragraph:
		node = document.NewNode(document.KindParagraph)
		m.mapChildren(gmNode, node)

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = document.NewNode(document.KindListItem)
		m.mapChildren(gmNode, node)

	case *ast.Blockquote:
		node = document.NewNode(document.KindBlockquote)
		m.mapChildren(gmNode, node)

	case *ast.FencedCodeBlock:
		node = m.mapFencedCodeBlock(gmn)

	case *ast.CodeBlock:
		node = document.NewNode(document.KindCodeBlock)
		node.Code = &document.CodeInfo{Fenced: false}

	case *ast.ThematicBreak:
		node = document.NewNode(document.KindThematicBreak)

	case *ast.HTMLBlock:
		node = document.NewNode(document.KindHTMLBlock)

	case *ast.Text:
		node = m.mapText(gmn)

	case *ast.Emphasis:
		if gmn.Level == 2 {
			node = document.NewNode(document.KindStrong)
		} else {
			node = document.NewNode(document.KindEmphasis)
		}
		m.mapChildren(gmNode, node)

	case *ast.CodeSpan:
		node = m.mapCodeSpan(gmn)

	case *ast.Link:
		node = document.NewNode(document.KindLink)
		node.Link = &document.LinkInfo{
			Destination: string(gmn.Destination),
			Title:       string(gmn.Title),
		}
		m.mapChildren(gmNode, node)

	case *ast.Image:
		node = document.NewNode(document.KindImage)
		node.Link = &document.LinkInfo{
			Destination: string(gmn.Destination),
			Title:       string(gmn.Title),
		}
		m.mapChildren(gmNode, node)

	case *ast.AutoLink:
		node = m.mapAutoLink(gmn)

	case *ast.RawHTML:
		node = document.NewNode(document.KindHTMLInline)

	case *ast.String:
		node = document.NewNode(document.KindText)
		node.Text = gmn.Value

	case *east.Table:
		node = document.NewNode(document.KindTable)
		node.Ext = map[string]any{"alignments": gmn.Alignments}
		m.mapChildren(gmNode, node)

	case *east.TableHeader, *east.TableRow, *east.TableCell:
		node = document.NewNode(document.KindRaw)
		m.mapChildren(gmNode, node)

	default:
		node = document.NewNode(document.KindRaw)
		m.mapChildren(gmNode, node)
	}

	m.assignRange(gmNode, node)
	return node
}

func (m *mapper) mapList(list *ast.List) *document.Node {
	node := document.NewNode(document.KindList)
	node.List = &document.ListInfo{
		Ordered: list.IsOrdered(),
		Start:   list.Start,
		Tight:   list.IsTight,
	}
	if !list.IsOrdered() {
		node.List.Marker = string(list.Marker)
	}
	m.mapChildren(list, node)
	return node
}

func (m *mapper) mapFencedCodeBlock(cb *ast.FencedCodeBlock) *document.Node {
	node := document.NewNode(document.KindCodeBlock)

	info := ""
	if cb.Info != nil {
		info = string(cb.Info.Value(m.content))
	}

	fenceChar, fenceLength := m.detectFence(cb)
	node.Code = &document.CodeInfo{
		Fenced:      true,
		FenceChar:   fenceChar,
		FenceLength: fenceLength,
		Info:        info,
	}
	return node
}

// detectFence examines the source line above the block's first content
// line to recover the fence character and length.
func (m *mapper) detectFence(cb *ast.FencedCodeBlock) (byte, int) {
	lines := cb.Lines()
	if lines.Len() == 0 {
		return '`', 3
	}

	lineStart := lines.At(0).Start
	for lineStart > 0 && m.content[lineStart-1] != '\n' {
		lineStart--
	}
	if lineStart == 0 {
		return '`', 3
	}

	prevEnd := lineStart - 1
	prevStart := prevEnd
	for prevStart > 0 && m.content[prevStart-1] != '\n' {
		prevStart--
	}

	pos := prevStart
	for pos < prevEnd && (m.content[pos] == ' ' || m.content[pos] == '\t') {
		pos++
	}
	if pos >= prevEnd || (m.content[pos] != '`' && m.content[pos] != '~') {
		return '`', 3
	}

	fenceChar := m.content[pos]
	fenceLength := 0
	for pos < prevEnd && m.content[pos] == fenceChar {
		fenceLength++
		pos++
	}
	if fenceLength < 3 {
		fenceLength = 3
	}
	return fenceChar, fenceLength
}

func (m *mapper) mapText(t *ast.Text) *document.Node {
	node := document.NewNode(document.KindText)
	node.Text = t.Value(m.content)
	return node
}

func (m *mapper) mapCodeSpan(cs *ast.CodeSpan) *document.Node {
	node := document.NewNode(document.KindCodeSpan)
	var text []byte
	for child := cs.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			text = append(text, t.Value(m.content)...)
		}
	}
	node.Text = text
	return node
}

func (m *mapper) mapAutoLink(al *ast.AutoLink) *document.Node {
	node := document.NewNode(document.KindLink)
	node.Link = &document.LinkInfo{
		Destination: string(al.URL(m.content)),
		AutoLink:    true,
	}

	text := document.NewNode(document.KindText)
	text.Text = al.Label(m.content)
	document.AppendChild(node, text)
	return node
}

// assignRange sets the node's byte range from goldmark segments.
// Block nodes use line segments; inline nodes use text segments of
// themselves or their children.
func (m *mapper) assignRange(gmNode ast.Node, node *document.Node) {
	if node == nil || node.HasRange() {
		return
	}

	if gmNode.Type() != ast.TypeInline {
		lines := gmNode.Lines()
		if lines.Len() > 0 {
			node.Start = lines.At(0).Start
			node.End = lines.At(lines.Len() - 1).Stop
			return
		}
		// No own lines (e.g. lists): derive from mapped children.
		rangeFromChildren(node)
		return
	}

	if t, ok := gmNode.(*ast.Text); ok {
		node.Start = t.Segment.Start
		node.End = t.Segment.Stop
		return
	}
	if raw, ok := gmNode.(*ast.RawHTML); ok {
		if raw.Segments.Len() > 0 {
			node.Start = raw.Segments.At(0).Start
			node.End = raw.Segments.At(raw.Segments.Len() - 1).Stop
		}
		return
	}
	rangeFromChildren(node)
}

// rangeFromChildren derives a node's range as the union of its mapped
// children's ranges.
func rangeFromChildren(node *document.Node) {
	start, end := -1, -1
	for child := node.FirstChild; child != nil; child = child.Next {
		if !child.HasRange() {
			continue
		}
		if start == -1 || child.Start < start {
			start = child.Start
		}
		if child.End > end {
			end = child.End
		}
	}
	node.Start = start
	node.End = end
}
