package configsource

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// counter feeds MapSource identities so every mutation is visible to
// resolution caches.
var counter atomic.Uint64

// MapSource is an in-memory configuration source, used for CLI flag
// overrides and tests. Keys are normalized through the resolver when
// one is set.
type MapSource struct {
	resolver Resolver
	values   map[string]string
	params   map[string]map[string]string
	identity string
}

// NewMapSource creates an empty in-memory source.
func NewMapSource(resolver Resolver) *MapSource {
	s := &MapSource{
		resolver: resolver,
		values:   make(map[string]string),
		params:   make(map[string]map[string]string),
	}
	s.bump()
	return s
}

// Set records a raw scalar value for a rule, e.g. "atx:error".
func (s *MapSource) Set(ruleID, raw string) {
	s.values[canonicalKey(ruleID, s.resolver)] = raw
	s.bump()
}

// SetParam records a named parameter for a rule.
func (s *MapSource) SetParam(ruleID, param, value string) {
	id := canonicalKey(ruleID, s.resolver)
	if s.params[id] == nil {
		s.params[id] = make(map[string]string)
	}
	s.params[id][strings.ToLower(param)] = value
	s.bump()
}

// RuleValue returns the raw scalar for a rule.
func (s *MapSource) RuleValue(ruleID string) (string, bool) {
	v, ok := s.values[strings.ToLower(ruleID)]
	return v, ok
}

// RuleParams returns the named parameters for a rule.
func (s *MapSource) RuleParams(ruleID string) map[string]string {
	return s.params[strings.ToLower(ruleID)]
}

// Identity returns a token unique to the current contents.
func (s *MapSource) Identity() string {
	return s.identity
}

// Rules returns the configured rule IDs in sorted order.
func (s *MapSource) Rules() []string {
	seen := make(map[string]struct{}, len(s.values)+len(s.params))
	for id := range s.values {
		seen[id] = struct{}{}
	}
	for id := range s.params {
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *MapSource) bump() {
	s.identity = fmt.Sprintf("mem:%d", counter.Add(1))
}
