package goldmark_test

import (
	"context"
	"testing"

	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/parser/goldmark"
)

func TestParse_Headings(t *testing.T) {
	t.Parallel()

	content := []byte("# One\n\n## Two\n\nbody\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "test.md", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	headings := ix.Headings()
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}

	if headings[0].HeadingLevel != 1 || headings[1].HeadingLevel != 2 {
		t.Errorf("heading levels = %d, %d", headings[0].HeadingLevel, headings[1].HeadingLevel)
	}

	// Block ranges are normalized to whole lines, so the heading starts
	// at the '#', not at the text.
	if line, col := ix.NodePositionStart(headings[0]); line != 1 || col != 1 {
		t.Errorf("first heading at (%d, %d), want (1, 1)", line, col)
	}
	if got := ix.NodeStartLine(headings[1]); got != 3 {
		t.Errorf("second heading on line %d, want 3", got)
	}
}

func TestParse_SetextHeadingIncludesUnderline(t *testing.T) {
	t.Parallel()

	content := []byte("Title\n=====\n\nSub\n---\n\nbody\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "test.md", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	headings := ix.Headings()
	if len(headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(headings))
	}

	// The underline is part of the heading range.
	if got := ix.NodeEndLine(headings[0]); got != 2 {
		t.Errorf("h1 end line = %d, want 2", got)
	}
	if got := ix.NodeEndLine(headings[1]); got != 5 {
		t.Errorf("h2 end line = %d, want 5", got)
	}
}

func TestParse_ATXHeadingNotExtended(t *testing.T) {
	t.Parallel()

	// The "===" after an ATX heading is a paragraph, not an underline.
	content := []byte("# Title\n===\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "test.md", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	headings := ix.Headings()
	if len(headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(headings))
	}
	if got := ix.NodeEndLine(headings[0]); got != 1 {
		t.Errorf("heading end line = %d, want 1", got)
	}
}

func TestParse_FencedCodeBlock(t *testing.T) {
	t.Parallel()

	content := []byte("```go\nx := 1\n```\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	blocks := ix.CodeBlocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 code block, got %d", len(blocks))
	}

	cb := blocks[0]
	if cb.Code == nil || !cb.Code.Fenced {
		t.Fatal("expected fenced code block attributes")
	}
	if cb.Code.Info != "go" {
		t.Errorf("info = %q, want %q", cb.Code.Info, "go")
	}
	if cb.Code.FenceChar != '`' || cb.Code.FenceLength != 3 {
		t.Errorf("fence = %c x%d", cb.Code.FenceChar, cb.Code.FenceLength)
	}

	// Normalized range covers the fences.
	if got := ix.NodeStartLine(cb); got != 1 {
		t.Errorf("code block start line = %d, want 1", got)
	}
	if got := ix.NodeEndLine(cb); got != 3 {
		t.Errorf("code block end line = %d, want 3", got)
	}
}

func TestParse_EmptyFencedCodeBlockHasRange(t *testing.T) {
	t.Parallel()

	content := []byte("text\n\n```\n```\n\n```go\n```\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	blocks := ix.CodeBlocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 code blocks, got %d", len(blocks))
	}

	if got := ix.NodeStartLine(blocks[0]); got != 3 {
		t.Errorf("first block start line = %d, want 3", got)
	}
	if got := ix.NodeEndLine(blocks[0]); got != 4 {
		t.Errorf("first block end line = %d, want 4", got)
	}
	if got := ix.NodeStartLine(blocks[1]); got != 6 {
		t.Errorf("second block start line = %d, want 6", got)
	}
}

func TestParse_Lists(t *testing.T) {
	t.Parallel()

	content := []byte("- one\n- two\n\n1. first\n2. second\n")
	ix, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	lists := ix.Lists()
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}

	if lists[0].List.Ordered {
		t.Error("first list should be unordered")
	}
	if lists[0].List.Marker != "-" {
		t.Errorf("marker = %q, want %q", lists[0].List.Marker, "-")
	}
	if !lists[1].List.Ordered || lists[1].List.Start != 1 {
		t.Errorf("second list ordered=%v start=%d", lists[1].List.Ordered, lists[1].List.Start)
	}

	items := document.FindByKind(lists[0], document.KindListItem)
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestParse_GFMTables(t *testing.T) {
	t.Parallel()

	content := []byte("| a | b |\n|---|---|\n| 1 | 2 |\n")
	ix, err := goldmark.New(goldmark.FlavorGFM).Parse(context.Background(), "", content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(ix.Tables()) != 1 {
		t.Errorf("expected 1 table, got %d", len(ix.Tables()))
	}
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := goldmark.New(goldmark.FlavorCommonMark).Parse(ctx, "", []byte("# x\n"))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestParse_InvalidFlavorDefaults(t *testing.T) {
	t.Parallel()

	p := goldmark.New("bogus")
	if p.Flavor() != goldmark.FlavorCommonMark {
		t.Errorf("flavor = %q, want commonmark", p.Flavor())
	}
}
