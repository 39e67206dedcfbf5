// Package configsource supplies raw per-rule configuration from YAML
// files or in-memory maps. It hands the engine raw strings only; all
// grammar interpretation happens in the engine's resolver.
package configsource

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Resolver normalizes rule keys to canonical IDs. It is satisfied by
// the engine registry; a nil resolver keeps keys as written
// (lowercased).
type Resolver interface {
	CanonicalID(key string) (string, bool)
}

// fileModel is the on-disk YAML shape. Each rule maps to either a
// scalar raw value or a mapping of named parameters, where the "value"
// key carries the scalar.
//
//	rules:
//	  MD009: "true:error"
//	  line-length:
//	    value: "true"
//	    line_length: "100"
type fileModel struct {
	Rules map[string]yaml.Node `yaml:"rules"`
}

// FileSource loads rule configuration from a YAML file. Parsed state
// is cached per file content; Invalidate forces a re-read on the next
// Reload. Safe for concurrent use.
type FileSource struct {
	path     string
	resolver Resolver

	mu       sync.RWMutex
	identity string
	values   map[string]string
	params   map[string]map[string]string
}

// NewFileSource creates a source for path. Call Reload before use; an
// unloaded source reports no configuration.
func NewFileSource(path string, resolver Resolver) *FileSource {
	return &FileSource{path: path, resolver: resolver}
}

// Path returns the configured file path.
func (s *FileSource) Path() string {
	return s.path
}

// Reload reads and parses the file. A missing file is not an error; it
// yields an empty source. Parse failures keep the previous state.
func (s *FileSource) Reload() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.mu.Lock()
			s.identity = s.path + ":absent"
			s.values = nil
			s.params = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("read config %s: %w", s.path, err)
	}

	sum := sha256.Sum256(content)
	identity := s.path + ":" + hex.EncodeToString(sum[:])

	s.mu.RLock()
	unchanged := identity == s.identity
	s.mu.RUnlock()
	if unchanged {
		return nil
	}

	var model fileModel
	if err := yaml.Unmarshal(content, &model); err != nil {
		return fmt.Errorf("parse config %s: %w", s.path, err)
	}

	values, params, err := flatten(model.Rules, s.resolver)
	if err != nil {
		return fmt.Errorf("config %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.identity = identity
	s.values = values
	s.params = params
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cached state so the next Reload re-reads the
// file even if its content hash is unchanged.
func (s *FileSource) Invalidate() {
	s.mu.Lock()
	s.identity = ""
	s.values = nil
	s.params = nil
	s.mu.Unlock()
}

// RuleValue returns the raw scalar configured for a rule.
func (s *FileSource) RuleValue(ruleID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[strings.ToLower(ruleID)]
	return v, ok
}

// RuleParams returns the named parameters configured for a rule.
func (s *FileSource) RuleParams(ruleID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params[strings.ToLower(ruleID)]
}

// Identity returns a token covering the path and content hash.
func (s *FileSource) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// flatten converts the YAML rule nodes into raw value and parameter
// maps keyed by canonical lowercased rule ID. Unknown rule keys are
// kept as written so a later validation step can warn about them.
func flatten(rules map[string]yaml.Node, resolver Resolver) (map[string]string, map[string]map[string]string, error) {
	values := make(map[string]string)
	params := make(map[string]map[string]string)

	for key, node := range rules {
		id := canonicalKey(key, resolver)

		switch node.Kind {
		case yaml.ScalarNode:
			values[id] = node.Value

		case yaml.MappingNode:
			// Walk key/value pairs directly so numeric and boolean
			// parameter values keep their literal text.
			ruleParams := make(map[string]string)
			for i := 0; i+1 < len(node.Content); i += 2 {
				pk, pv := node.Content[i], node.Content[i+1]
				if pv.Kind != yaml.ScalarNode {
					return nil, nil, fmt.Errorf("rule %s: parameter %s must be a scalar", key, pk.Value)
				}
				if strings.EqualFold(pk.Value, "value") {
					values[id] = pv.Value
					continue
				}
				ruleParams[strings.ToLower(pk.Value)] = pv.Value
			}
			if len(ruleParams) > 0 {
				params[id] = ruleParams
			}

		default:
			return nil, nil, fmt.Errorf("rule %s: expected scalar or mapping", key)
		}
	}

	return values, params, nil
}

func canonicalKey(key string, resolver Resolver) string {
	if resolver != nil {
		if id, ok := resolver.CanonicalID(key); ok {
			return id
		}
	}
	return strings.ToLower(key)
}
