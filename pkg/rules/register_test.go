package rules_test

import (
	"testing"

	"github.com/yaklabco/marklint/pkg/rules"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := rules.NewRegistry()

	ids := []string{
		"MD001", "MD009", "MD010", "MD012", "MD013",
		"MD022", "MD029", "MD032", "MD040", "MD047",
	}
	if registry.Len() != len(ids) {
		t.Errorf("registry has %d rules, want %d", registry.Len(), len(ids))
	}
	for _, id := range ids {
		if _, ok := registry.Get(id); !ok {
			t.Errorf("rule %s not registered", id)
		}
	}

	// Names and aliases resolve to their canonical IDs.
	keys := map[string]string{
		"no-trailing-spaces":  "md009",
		"trailing-spaces":     "md009",
		"hard-tabs":           "md010",
		"blanks-around-lists": "md032",
	}
	for key, want := range keys {
		canonical, ok := registry.CanonicalID(key)
		if !ok {
			t.Errorf("key %s not resolvable", key)
			continue
		}
		if canonical != want {
			t.Errorf("key %s resolves to %s, want %s", key, canonical, want)
		}
	}
}

func TestRuleMetadata(t *testing.T) {
	t.Parallel()

	for _, rule := range rules.NewRegistry().Rules() {
		if rule.Description() == "" {
			t.Errorf("rule %s has no description", rule.ID())
		}
		if rule.HelpURL() == "" {
			t.Errorf("rule %s has no help URL", rule.ID())
		}
		if !rule.DefaultSeverity().IsValid() {
			t.Errorf("rule %s has invalid default severity", rule.ID())
		}
	}
}
