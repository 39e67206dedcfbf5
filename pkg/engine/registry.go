package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the known rules, addressable by ID, name, or alias.
// All lookups are case-insensitive. It doubles as the canonical-ID
// resolver for suppression directives.
type Registry struct {
	rules  map[string]Rule   // canonical lowercased ID -> rule
	lookup map[string]string // lowercased ID/name/alias -> canonical ID
	order  []string          // canonical IDs in registration order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules:  make(map[string]Rule),
		lookup: make(map[string]string),
	}
}

// Register adds a rule. The ID and name must not collide with any
// already-registered rule.
func (r *Registry) Register(rule Rule) error {
	id := strings.ToLower(rule.ID())
	if id == "" {
		return fmt.Errorf("rule has empty ID")
	}
	if _, exists := r.lookup[id]; exists {
		return fmt.Errorf("rule %q already registered", rule.ID())
	}

	name := strings.ToLower(rule.Name())
	if name != "" && name != id {
		if _, exists := r.lookup[name]; exists {
			return fmt.Errorf("rule name %q already registered", rule.Name())
		}
		r.lookup[name] = id
	}

	r.rules[id] = rule
	r.lookup[id] = id
	r.order = append(r.order, id)
	return nil
}

// MustRegister registers a rule and panics on collision. Intended for
// package-level rule tables assembled at startup.
func (r *Registry) MustRegister(rule Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// RegisterAlias maps an extra key to an already-registered rule.
func (r *Registry) RegisterAlias(alias, ruleID string) error {
	canonical, ok := r.lookup[strings.ToLower(ruleID)]
	if !ok {
		return fmt.Errorf("unknown rule %q for alias %q", ruleID, alias)
	}
	key := strings.ToLower(alias)
	if _, exists := r.lookup[key]; exists {
		return fmt.Errorf("alias %q already registered", alias)
	}
	r.lookup[key] = canonical
	return nil
}

// Get returns the rule for an ID, name, or alias.
func (r *Registry) Get(key string) (Rule, bool) {
	canonical, ok := r.lookup[strings.ToLower(key)]
	if !ok {
		return nil, false
	}
	return r.rules[canonical], true
}

// CanonicalID resolves any rule key to the canonical (lowercased) rule
// ID. It satisfies the suppression processor's resolver contract.
func (r *Registry) CanonicalID(key string) (string, bool) {
	canonical, ok := r.lookup[strings.ToLower(key)]
	return canonical, ok
}

// Rules returns all registered rules sorted by ID, which fixes the
// execution order regardless of registration order.
func (r *Registry) Rules() []Rule {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)

	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, r.rules[id])
	}
	return rules
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
