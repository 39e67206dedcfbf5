// Package goldmark builds document indexes using the goldmark library.
package goldmark

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/marklint/pkg/document"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser parses Markdown into document.Index values.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a parser for the given flavor ("commonmark" or "gfm").
// Invalid flavors default to CommonMark.
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse converts raw Markdown bytes into a fully-populated Index.
// Returns an error only for cancellation; goldmark itself accepts any
// byte sequence.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*document.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	m := newMapper(content)
	root := m.mapDocument(gmDoc)

	ix := document.NewIndex(path, content, root)
	assignEmptyFenceRanges(ix, root)
	normalizeBlockRanges(ix, root)

	return ix, nil
}

// flavorOrDefault returns the flavor if valid, otherwise CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}

// normalizeBlockRanges widens every block node's byte range to whole
// lines. goldmark line segments for headings and fenced code blocks
// exclude the marker syntax; line-based rules need the full lines.
func normalizeBlockRanges(ix *document.Index, root *document.Node) {
	//nolint:errcheck // visitor never returns an error
	document.Walk(root, func(n *document.Node) error {
		if !n.IsBlock() || !n.HasRange() {
			return nil
		}

		startLine, _ := ix.LineAt(n.Start)
		endLine, _ := ix.LineAt(max(n.Start, n.End-1))

		// Fenced code block content segments exclude the fences.
		if n.Kind == document.KindCodeBlock && n.Code != nil && n.Code.Fenced {
			if startLine > 1 && ix.InCodeBlock(startLine-1) {
				startLine--
			}
			if endLine < ix.LineCount() && ix.InCodeBlock(endLine+1) {
				endLine++
			}
		}

		// Setext heading line segments exclude the underline.
		if n.Kind == document.KindHeading && !isATXHeadingLine(ix.Line(startLine)) &&
			isSetextUnderline(ix.Line(endLine+1), n.HeadingLevel) {
			endLine++
		}

		if info, ok := ix.LineRange(startLine); ok {
			n.Start = info.StartOffset
		}
		if info, ok := ix.LineRange(endLine); ok {
			n.End = info.NewlineStart
		}
		return nil
	})
}

// isATXHeadingLine reports whether the line carries an ATX heading
// marker.
func isATXHeadingLine(line []byte) bool {
	trimmed := bytes.TrimLeft(line, " ")
	return len(trimmed) > 0 && trimmed[0] == '#'
}

// isSetextUnderline reports whether line is a setext underline for a
// heading of the given level: all '=' for level 1 or all '-' for level
// 2, after up to three leading spaces.
func isSetextUnderline(line []byte, level int) bool {
	var marker byte
	switch level {
	case 1:
		marker = '='
	case 2:
		marker = '-'
	default:
		return false
	}

	trimmed := bytes.TrimRight(line, " \t")
	indent := 0
	for indent < len(trimmed) && trimmed[indent] == ' ' {
		indent++
	}
	if indent > 3 || indent == len(trimmed) {
		return false
	}
	for _, ch := range trimmed[indent:] {
		if ch != marker {
			return false
		}
	}
	return true
}

// assignEmptyFenceRanges gives fenced code blocks without a byte range
// the range of their fence lines. goldmark tracks only content line
// segments, so a fenced block with nothing between the fences gets no
// range from the mapper; the line classifier still sees its fences.
func assignEmptyFenceRanges(ix *document.Index, root *document.Node) {
	searchLine := 1
	//nolint:errcheck // visitor never returns an error
	document.Walk(root, func(n *document.Node) error {
		if n.Kind != document.KindCodeBlock || n.Code == nil || !n.Code.Fenced {
			return nil
		}

		if n.HasRange() {
			// Skip this block's whole fence run, closing fence included.
			line, _ := ix.LineAt(max(n.Start, n.End-1))
			for line < ix.LineCount() && ix.InCodeBlock(line+1) {
				line++
			}
			if line >= searchLine {
				searchLine = line + 1
			}
			return nil
		}

		start, end, ok := nextFenceRun(ix, searchLine)
		if !ok {
			return nil
		}
		if first, ok := ix.LineRange(start); ok {
			n.Start = first.StartOffset
		}
		if last, ok := ix.LineRange(end); ok {
			n.End = last.NewlineStart
		}
		searchLine = end + 1
		return nil
	})
}

// nextFenceRun returns the line bounds of the first contiguous run of
// fenced-code lines beginning at or after from.
func nextFenceRun(ix *document.Index, from int) (int, int, bool) {
	for line := from; line <= ix.LineCount(); line++ {
		if !ix.InCodeBlock(line) {
			continue
		}
		if line > 1 && ix.InCodeBlock(line-1) {
			// Middle of a run that began before from.
			continue
		}
		end := line
		for end < ix.LineCount() && ix.InCodeBlock(end+1) {
			end++
		}
		return line, end, true
	}
	return 0, 0, false
}
