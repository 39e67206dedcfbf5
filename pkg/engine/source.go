package engine

import (
	"sync"

	"github.com/yaklabco/marklint/pkg/config"
)

// Source supplies raw configuration for rules. Implementations load
// settings from files or flags; the engine only sees raw strings and
// resolves them through the configuration grammar.
type Source interface {
	// RuleValue returns the raw scalar value for a rule, such as
	// "atx:error" or "false", and whether one is set.
	RuleValue(ruleID string) (string, bool)

	// RuleParams returns named parameters for a rule, or nil.
	RuleParams(ruleID string) map[string]string

	// Identity returns a stable token for the source's current
	// contents. Two calls return the same token only while the
	// underlying settings are unchanged.
	Identity() string
}

// resolverCache memoizes resolved rule configurations keyed by source
// identity. Resolution is pure, so clearing the cache can never change
// an analysis result, only the work done to get it.
type resolverCache struct {
	mu      sync.Mutex
	entries map[string]map[string]config.RuleConfig
}

func newResolverCache() *resolverCache {
	return &resolverCache{entries: make(map[string]map[string]config.RuleConfig)}
}

func (c *resolverCache) get(identity, ruleID string) (config.RuleConfig, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byRule, ok := c.entries[identity]
	if !ok {
		return config.RuleConfig{}, false
	}
	cfg, ok := byRule[ruleID]
	return cfg, ok
}

func (c *resolverCache) put(identity, ruleID string, cfg config.RuleConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byRule, ok := c.entries[identity]
	if !ok {
		byRule = make(map[string]config.RuleConfig)
		c.entries[identity] = byRule
	}
	byRule[ruleID] = cfg
}

func (c *resolverCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]map[string]config.RuleConfig)
}

// resolveRuleConfig produces the effective configuration for one rule.
// With no source, or a source that says nothing about the rule, the
// rule runs enabled at its default severity.
func resolveRuleConfig(src Source, rule Rule, cache *resolverCache) config.RuleConfig {
	if src == nil {
		return config.Default(rule.DefaultSeverity())
	}

	id := rule.ID()
	identity := src.Identity()
	if cfg, ok := cache.get(identity, id); ok {
		return cfg
	}

	raw, hasRaw := src.RuleValue(id)
	params := src.RuleParams(id)

	var cfg config.RuleConfig
	if !hasRaw && len(params) == 0 {
		cfg = config.Default(rule.DefaultSeverity())
	} else {
		cfg = config.Resolve(raw, params)
	}

	cache.put(identity, id, cfg)
	return cfg
}
