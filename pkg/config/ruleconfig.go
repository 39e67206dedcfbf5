package config

import (
	"strconv"
	"strings"
)

// RuleConfig is the resolved configuration for one rule during one
// analysis pass. It is built per rule per document and never shared.
type RuleConfig struct {
	// Enabled indicates whether the rule should run at all.
	Enabled bool

	// Severity is the resolved severity for violations from this rule.
	Severity Severity

	// ScalarValue is the bare configuration value, if any, with the
	// severity suffix stripped (e.g. "atx" from "atx:error").
	ScalarValue string

	// HasScalar is true if a bare value was present in the source.
	HasScalar bool

	// Parameters holds named parameter overlays as raw strings.
	Parameters map[string]string
}

// Resolve parses a raw configuration string and an optional named
// parameter map into a RuleConfig.
//
// Grammar: <value>[:<severity>] where severity is one of error, warning,
// suggestion, silent, none. A "none" suffix disables the rule. A bare
// value of "false" also disables the rule, regardless of any suffix.
// A missing suffix defaults to warning.
func Resolve(raw string, params map[string]string) RuleConfig {
	cfg := RuleConfig{
		Enabled:    true,
		Severity:   DefaultSeverity,
		Parameters: params,
	}

	value := strings.TrimSpace(raw)
	if value != "" {
		value = splitSeverity(value, &cfg)
	}

	if value != "" {
		cfg.ScalarValue = value
		cfg.HasScalar = true
	}

	// "false" disables no matter what the suffix said.
	if strings.EqualFold(value, "false") {
		cfg.Enabled = false
	}

	return cfg
}

// splitSeverity strips a trailing ":<severity>" suffix from value,
// recording its effect on cfg, and returns the remaining bare value.
// An unrecognized suffix is left in place and treated as part of the value.
func splitSeverity(value string, cfg *RuleConfig) string {
	idx := strings.LastIndex(value, ":")
	if idx < 0 {
		return value
	}

	sev, ok := ParseSeverity(value[idx+1:])
	if !ok {
		return value
	}

	cfg.Severity = sev
	if sev == SeverityNone {
		cfg.Enabled = false
	}
	return strings.TrimSpace(value[:idx])
}

// lookup returns the raw string for key: a named parameter wins, the bare
// scalar value is the fallback. Returns ("", false) when neither exists.
func (c *RuleConfig) lookup(key string) (string, bool) {
	if c.Parameters != nil {
		if v, ok := c.Parameters[key]; ok {
			return v, true
		}
	}
	if c.HasScalar {
		return c.ScalarValue, true
	}
	return "", false
}

// String returns the configured value for key, or defaultValue.
func (c *RuleConfig) String(key, defaultValue string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return defaultValue
}

// Int returns the configured integer for key, or defaultValue.
// Parse failures fall back to defaultValue rather than erroring.
func (c *RuleConfig) Int(key string, defaultValue int) int {
	v, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return defaultValue
	}
	return n
}

// Bool returns the configured boolean for key, or defaultValue.
// Parse failures fall back to defaultValue rather than erroring.
func (c *RuleConfig) Bool(key string, defaultValue bool) bool {
	v, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return defaultValue
	}
	return b
}

// Disabled returns a RuleConfig representing a rule that must not run.
func Disabled() RuleConfig {
	return RuleConfig{Enabled: false, Severity: SeverityNone}
}

// Default returns the RuleConfig used when no source configures the rule.
func Default(severity Severity) RuleConfig {
	if !severity.IsValid() || severity == SeverityNone {
		severity = DefaultSeverity
	}
	return RuleConfig{Enabled: true, Severity: severity}
}
