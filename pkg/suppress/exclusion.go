// Package suppress interprets inline suppression directives into a
// per-line, per-rule suppression decision.
package suppress

import "strings"

// Exclusion is a tagged value describing which rules are excluded:
// all of them, a named set, or none. The zero value excludes nothing.
type Exclusion struct {
	// All is true when every rule is excluded.
	All bool

	// Names holds canonical rule keys (lowercased) when All is false.
	Names map[string]struct{}
}

// None returns an exclusion that excludes nothing.
func None() Exclusion {
	return Exclusion{}
}

// AllRules returns an exclusion that excludes every rule.
func AllRules() Exclusion {
	return Exclusion{All: true}
}

// IsNone returns true if the exclusion excludes nothing.
func (e Exclusion) IsNone() bool {
	return !e.All && len(e.Names) == 0
}

// Excludes returns true if the given canonical key is excluded.
func (e Exclusion) Excludes(key string) bool {
	if e.All {
		return true
	}
	_, ok := e.Names[strings.ToLower(key)]
	return ok
}

// Clone returns an independent copy of the exclusion.
func (e Exclusion) Clone() Exclusion {
	if e.Names == nil {
		return Exclusion{All: e.All}
	}
	names := make(map[string]struct{}, len(e.Names))
	for k := range e.Names {
		names[k] = struct{}{}
	}
	return Exclusion{All: e.All, Names: names}
}

// add unions the given keys into the exclusion. Adding to an All
// exclusion is a no-op; it already covers everything.
func (e *Exclusion) add(keys []string) {
	if e.All {
		return
	}
	if e.Names == nil {
		e.Names = make(map[string]struct{}, len(keys))
	}
	for _, k := range keys {
		e.Names[strings.ToLower(k)] = struct{}{}
	}
}

// remove deletes the given keys from the named set. An All exclusion is
// left untouched; only a bare enable clears it.
func (e *Exclusion) remove(keys []string) {
	if e.All {
		return
	}
	for _, k := range keys {
		delete(e.Names, strings.ToLower(k))
	}
}

// union returns the combination of two exclusions.
func union(a, b Exclusion) Exclusion {
	if a.All || b.All {
		return AllRules()
	}
	if len(a.Names) == 0 {
		return b.Clone()
	}
	out := a.Clone()
	for k := range b.Names {
		out.Names[k] = struct{}{}
	}
	return out
}
