// Package rules holds the built-in rule catalog. The catalog is open:
// hosts may register additional rules on their own registry; nothing
// here is required by the engine itself.
package rules

import "github.com/yaklabco/marklint/pkg/engine"

const docBaseURL = "https://github.com/yaklabco/marklint/blob/main/docs/rules/"

// ruleDocURL returns the documentation URL for a rule ID.
func ruleDocURL(id string) string {
	return docBaseURL + id + ".md"
}

// RegisterAll registers every built-in rule with the registry.
func RegisterAll(registry *engine.Registry) {
	// Whitespace rules
	registry.MustRegister(NewTrailingSpacesRule()) // MD009
	registry.MustRegister(NewHardTabsRule())       // MD010
	registry.MustRegister(NewMultipleBlanksRule()) // MD012
	registry.MustRegister(NewFinalNewlineRule())   // MD047

	// Heading rules
	registry.MustRegister(NewHeadingIncrementRule())     // MD001
	registry.MustRegister(NewBlanksAroundHeadingsRule()) // MD022

	// List rules
	registry.MustRegister(NewOrderedListPrefixRule()) // MD029
	registry.MustRegister(NewBlanksAroundListsRule()) // MD032

	// Line length rule
	registry.MustRegister(NewLineLengthRule()) // MD013

	// Code block rules
	registry.MustRegister(NewFencedCodeLanguageRule()) // MD040

	// Aliases kept for compatibility with older config files. Rule
	// names already resolve on their own, so only keys that differ
	// from the registered name belong here; each points at a freshly
	// registered ID and cannot fail.
	_ = registry.RegisterAlias("trailing-spaces", "MD009")
	_ = registry.RegisterAlias("hard-tabs", "MD010")
}

// NewRegistry builds a registry preloaded with every built-in rule.
func NewRegistry() *engine.Registry {
	registry := engine.NewRegistry()
	RegisterAll(registry)
	return registry
}
