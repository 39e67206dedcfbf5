// Package engine orchestrates rule execution: it resolves per-rule
// configuration, runs each registered rule against the document index,
// filters violations through the suppression map, and emits a
// deterministically ordered violation list.
package engine

import (
	"context"

	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/fix"
)

// Violation is a single issue found by a rule. Line and column values
// are 1-based and always refer to the original, unmodified text.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation.
	RuleID string

	// RuleName is the human-readable rule name (e.g. "no-trailing-spaces").
	RuleName string

	// Line is the 1-based line the violation is on.
	Line int

	// ColumnStart is the 1-based column where the violation starts.
	ColumnStart int

	// ColumnEnd is the 1-based column just past the violation.
	ColumnEnd int

	// Message describes the issue.
	Message string

	// Severity is the resolved reporting level.
	Severity config.Severity

	// FixDescription optionally describes the available fix.
	FixDescription string

	// FixEdits contains the text edits to fix this violation (may be
	// empty). The same edits serve single-violation and batch fixing.
	FixEdits []fix.TextEdit
}

// HasFix returns true if this violation has associated fix edits.
func (v *Violation) HasFix() bool {
	return len(v.FixEdits) > 0
}

// Rule is the contract for pattern-detection rules. Implementations
// must be pure: no side effects, no shared mutable state between
// invocations.
type Rule interface {
	// ID returns the stable identifier (e.g. "MD009").
	ID() string

	// Name returns the human-readable alias name.
	Name() string

	// Description returns a one-line description of the check.
	Description() string

	// HelpURL returns a documentation reference, or "".
	HelpURL() string

	// DefaultSeverity returns the severity used when no configuration
	// source sets one.
	DefaultSeverity() config.Severity

	// CanFix returns whether the rule attaches fix edits.
	CanFix() bool

	// Check analyzes the document and returns violations. Errors are
	// internal failures, not violations; the orchestrator isolates
	// them per rule.
	Check(rctx *RuleContext) ([]Violation, error)
}

// RuleContext is the per-invocation parameter object handed to a rule.
type RuleContext struct {
	// Ctx carries cancellation. Rules should poll it on long scans.
	Ctx context.Context

	// Index is the immutable document view.
	Index *document.Index

	// Config is the resolved rule configuration.
	Config config.RuleConfig

	// Severity is the resolved severity for emitted violations.
	Severity config.Severity
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// NewViolation starts a violation for this rule invocation with the
// resolved severity applied.
func (rc *RuleContext) NewViolation(rule Rule, line, colStart, colEnd int, message string) Violation {
	return Violation{
		RuleID:      rule.ID(),
		RuleName:    rule.Name(),
		Line:        line,
		ColumnStart: colStart,
		ColumnEnd:   colEnd,
		Message:     message,
		Severity:    rc.Severity,
	}
}
