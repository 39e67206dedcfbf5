package configsource

import "strings"

// Source is the provider contract layered sources compose. It matches
// the engine's configuration source interface.
type Source interface {
	RuleValue(ruleID string) (string, bool)
	RuleParams(ruleID string) map[string]string
	Identity() string
}

// Layered combines sources with earlier entries taking precedence,
// e.g. CLI overrides over a project config file.
type Layered struct {
	sources []Source
}

// NewLayered builds a layered source. Nil entries are skipped.
func NewLayered(sources ...Source) *Layered {
	var kept []Source
	for _, s := range sources {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Layered{sources: kept}
}

// RuleValue returns the raw scalar from the first layer that sets one.
func (l *Layered) RuleValue(ruleID string) (string, bool) {
	for _, s := range l.sources {
		if v, ok := s.RuleValue(ruleID); ok {
			return v, true
		}
	}
	return "", false
}

// RuleParams merges parameters across layers; earlier layers win on
// conflicting keys. Returns nil when no layer sets any.
func (l *Layered) RuleParams(ruleID string) map[string]string {
	var merged map[string]string
	// Iterate lowest precedence first so higher layers overwrite.
	for i := len(l.sources) - 1; i >= 0; i-- {
		params := l.sources[i].RuleParams(ruleID)
		if len(params) == 0 {
			continue
		}
		if merged == nil {
			merged = make(map[string]string, len(params))
		}
		for k, v := range params {
			merged[k] = v
		}
	}
	return merged
}

// Identity concatenates the layer identities.
func (l *Layered) Identity() string {
	ids := make([]string, 0, len(l.sources))
	for _, s := range l.sources {
		ids = append(ids, s.Identity())
	}
	return strings.Join(ids, "|")
}
