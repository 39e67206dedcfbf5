package rules_test

import (
	"context"
	"testing"

	"github.com/yaklabco/marklint/pkg/config"
	"github.com/yaklabco/marklint/pkg/engine"
	goldmarkparser "github.com/yaklabco/marklint/pkg/parser/goldmark"
)

// check parses content and runs one rule over it with the given named
// parameters.
func check(t *testing.T, rule engine.Rule, content string, params map[string]string) []engine.Violation {
	t.Helper()

	index, err := goldmarkparser.New(goldmarkparser.FlavorGFM).
		Parse(context.Background(), "test.md", []byte(content))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg := config.Resolve("", params)
	rctx := &engine.RuleContext{
		Ctx:      context.Background(),
		Index:    index,
		Config:   cfg,
		Severity: cfg.Severity,
	}

	violations, err := rule.Check(rctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	return violations
}

// applyFixes applies every fix edit from the violations to content.
func applyFixes(t *testing.T, violations []engine.Violation, content string) string {
	t.Helper()

	batch, err := engine.BuildFixBatch(violations, len(content))
	if err != nil {
		t.Fatalf("build batch: %v", err)
	}
	out, err := batch.Apply([]byte(content))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	return string(out)
}

func wantLines(t *testing.T, violations []engine.Violation, lines ...int) {
	t.Helper()

	if len(violations) != len(lines) {
		t.Fatalf("got %d violations, want %d: %+v", len(violations), len(lines), violations)
	}
	for i, want := range lines {
		if violations[i].Line != want {
			t.Errorf("violation %d on line %d, want %d", i, violations[i].Line, want)
		}
	}
}
