package rules

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/engine"
	"github.com/yaklabco/marklint/pkg/fix"
)

// OrderedListPrefixRule checks ordered list item numbering.
type OrderedListPrefixRule struct {
	engine.BaseRule
}

// NewOrderedListPrefixRule creates the MD029 rule.
func NewOrderedListPrefixRule() *OrderedListPrefixRule {
	return &OrderedListPrefixRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD029",
			RuleName:        "ol-prefix",
			RuleDescription: "Ordered list item prefixes should be consistent",
			RuleHelpURL:     ruleDocURL("md029"),
			Fixable:         true,
		},
	}
}

// Check verifies ordered list numbering against the style parameter:
// "one" (all items numbered 1), "ordered" (1, 2, 3...), "zero" (all 0),
// or "one_or_ordered" (default), which accepts either and infers the
// intended style from the second item.
func (r *OrderedListPrefixRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	style := rctx.Config.String("style", "one_or_ordered")

	var violations []engine.Violation

	for _, list := range rctx.Index.Lists() {
		if list.List == nil || !list.List.Ordered {
			continue
		}

		items := collectItemMarkers(rctx.Index, list)
		if len(items) == 0 {
			continue
		}

		effective := style
		if style == "one_or_ordered" {
			effective = inferOrderedStyle(items)
		}

		violations = append(violations, r.checkItems(rctx, items, effective, list.List.Start)...)
	}

	return violations, nil
}

// itemMarker is one ordered list item's numeric prefix.
type itemMarker struct {
	line     int
	col      int
	startOff int
	endOff   int
	number   int
}

// collectItemMarkers extracts the numeric prefix of each list item.
// Items whose prefix cannot be parsed are skipped.
func collectItemMarkers(ix *document.Index, list *document.Node) []itemMarker {
	var items []itemMarker

	for item := list.FirstChild; item != nil; item = item.Next {
		if item.Kind != document.KindListItem || !item.HasRange() {
			continue
		}

		line := ix.NodeStartLine(item)
		text := ix.Line(line)
		info, ok := ix.LineRange(line)
		if !ok {
			continue
		}

		idx := 0
		for idx < len(text) && (text[idx] == ' ' || text[idx] == '\t') {
			idx++
		}
		start := idx
		for idx < len(text) && text[idx] >= '0' && text[idx] <= '9' {
			idx++
		}
		if idx == start || idx >= len(text) || (text[idx] != '.' && text[idx] != ')') {
			continue
		}

		number, err := strconv.Atoi(string(text[start:idx]))
		if err != nil {
			continue
		}

		items = append(items, itemMarker{
			line:     line,
			col:      start + 1,
			startOff: info.StartOffset + start,
			endOff:   info.StartOffset + idx,
			number:   number,
		})
	}

	return items
}

// inferOrderedStyle decides between "one" and "ordered" from the second
// item: a second item numbered 1 means the all-ones style.
func inferOrderedStyle(items []itemMarker) string {
	if len(items) < 2 {
		return "one"
	}
	if items[1].number == 1 {
		return "one"
	}
	return "ordered"
}

func (r *OrderedListPrefixRule) checkItems(rctx *engine.RuleContext, items []itemMarker, style string, listStart int) []engine.Violation {
	var violations []engine.Violation

	for i, item := range items {
		var want int
		switch style {
		case "one":
			want = 1
		case "zero":
			want = 0
		case "ordered":
			want = listStart + i
		default:
			return nil
		}

		if item.number == want {
			continue
		}

		v := rctx.NewViolation(r, item.line, item.col, item.col+(item.endOff-item.startOff),
			fmt.Sprintf("Ordered list item prefix is %d; expected %d (style: %s)", item.number, want, style))
		v.FixDescription = fmt.Sprintf("Renumber list item to %d", want)
		builder := fix.NewEditBuilder()
		builder.ReplaceRange(item.startOff, item.endOff, strconv.Itoa(want))
		v.FixEdits = builder.Edits
		violations = append(violations, v)
	}

	return violations
}

// BlanksAroundListsRule checks that lists are surrounded by blank lines.
type BlanksAroundListsRule struct {
	engine.BaseRule
}

// NewBlanksAroundListsRule creates the MD032 rule.
func NewBlanksAroundListsRule() *BlanksAroundListsRule {
	return &BlanksAroundListsRule{
		BaseRule: engine.BaseRule{
			RuleID:          "MD032",
			RuleName:        "blanks-around-lists",
			RuleDescription: "Lists should be surrounded by blank lines",
			RuleHelpURL:     ruleDocURL("md032"),
			Fixable:         true,
		},
	}
}

// Check flags top-level lists missing a blank line on either side. Each
// side is an independent fix, so a neighbor claiming one boundary never
// blocks the other.
func (r *BlanksAroundListsRule) Check(rctx *engine.RuleContext) ([]engine.Violation, error) {
	var violations []engine.Violation

	for _, list := range rctx.Index.Lists() {
		if nestedList(list) {
			continue
		}

		startLine := rctx.Index.NodeStartLine(list)
		endLine := rctx.Index.NodeEndLine(list)
		if startLine == 0 {
			continue
		}

		if startLine > 1 && !rctx.Index.IsBlank(startLine-1) && !rctx.Index.InFrontMatter(startLine-1) {
			v := rctx.NewViolation(r, startLine, 1, 1, "List is not preceded by a blank line")
			v.FixDescription = "Insert blank line before list"
			if info, ok := rctx.Index.LineRange(startLine); ok {
				builder := fix.NewEditBuilder()
				builder.InsertBlankLineBefore(info.StartOffset, startLine)
				v.FixEdits = builder.Edits
			}
			violations = append(violations, v)
		}

		if endLine > 0 && endLine < rctx.Index.LineCount() && !rctx.Index.IsBlank(endLine+1) {
			v := rctx.NewViolation(r, endLine, 1, 1, "List is not followed by a blank line")
			v.FixDescription = "Insert blank line after list"
			if info, ok := rctx.Index.LineRange(endLine + 1); ok {
				builder := fix.NewEditBuilder()
				builder.InsertBlankLineBefore(info.StartOffset, endLine+1)
				v.FixEdits = builder.Edits
			}
			violations = append(violations, v)
		}
	}

	return violations, nil
}

// nestedList reports whether a list node sits inside another list.
func nestedList(list *document.Node) bool {
	for p := list.Parent; p != nil; p = p.Parent {
		if p.Kind == document.KindList || p.Kind == document.KindListItem {
			return true
		}
	}
	return false
}
