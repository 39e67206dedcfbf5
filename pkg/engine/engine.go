package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/marklint/internal/logging"
	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/suppress"
)

// Parser turns raw markdown into a document index.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*document.Index, error)
}

// Analyzer runs every enabled rule over a document and returns the
// filtered, ordered violation list. It is safe for concurrent use.
type Analyzer struct {
	parser   Parser
	registry *Registry
	source   Source
	cache    *resolverCache
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSource sets the configuration source consulted for each rule.
func WithSource(src Source) Option {
	return func(a *Analyzer) { a.source = src }
}

// NewAnalyzer builds an Analyzer over the given parser and rule set.
func NewAnalyzer(parser Parser, registry *Registry, opts ...Option) *Analyzer {
	a := &Analyzer{
		parser:   parser,
		registry: registry,
		cache:    newResolverCache(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ClearCache drops all memoized configuration resolutions. Subsequent
// analyses recompute them; results are unchanged.
func (a *Analyzer) ClearCache() {
	a.cache.clear()
}

// Analyze parses content, runs all enabled rules, removes suppressed
// violations, and returns the rest sorted by line then column. The
// path is used for reporting only and may be empty. Cancellation is
// honored between rules; a cancelled context returns ctx.Err().
func (a *Analyzer) Analyze(ctx context.Context, path string, content []byte) ([]Violation, error) {
	index, err := a.parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a.AnalyzeIndex(ctx, index)
}

// AnalyzeIndex runs the rule pass over an already-built index.
func (a *Analyzer) AnalyzeIndex(ctx context.Context, index *document.Index) ([]Violation, error) {
	logger := logging.FromContext(ctx)

	suppressions := suppress.NewProcessor(a.registry).Process(index)

	var violations []Violation
	for _, rule := range a.registry.Rules() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cfg := resolveRuleConfig(a.source, rule, a.cache)
		if !cfg.Enabled {
			continue
		}

		rctx := &RuleContext{
			Ctx:      ctx,
			Index:    index,
			Config:   cfg,
			Severity: cfg.Severity,
		}

		found, err := runRule(rule, rctx)
		if err != nil {
			// One broken rule must not take down the whole pass.
			logger.Error("rule failed",
				logging.FieldRule, rule.ID(),
				logging.FieldPath, index.Path(),
				logging.FieldError, err,
			)
			continue
		}
		violations = append(violations, found...)
	}

	filtered := violations[:0]
	for _, v := range violations {
		if suppressions.Suppressed(v.Line, v.RuleID) {
			continue
		}
		filtered = append(filtered, v)
	}

	sortViolations(filtered)
	return filtered, nil
}

// runRule invokes a rule, converting a panic into an error so rule
// bugs stay contained.
func runRule(rule Rule, rctx *RuleContext) (found []Violation, err error) {
	defer func() {
		if r := recover(); r != nil {
			found = nil
			err = fmt.Errorf("rule %s panicked: %v", rule.ID(), r)
		}
	}()
	return rule.Check(rctx)
}

// sortViolations orders violations by line, then column, then rule ID
// so equal positions still compare deterministically.
func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.ColumnStart != b.ColumnStart {
			return a.ColumnStart < b.ColumnStart
		}
		return a.RuleID < b.RuleID
	})
}
