package engine

import "github.com/yaklabco/marklint/pkg/config"

// BaseRule carries the descriptor data shared by all rules. Embed it
// and implement Check.
type BaseRule struct {
	RuleID          string
	RuleName        string
	RuleDescription string
	RuleHelpURL     string
	Severity        config.Severity
	Fixable         bool
}

func (b *BaseRule) ID() string          { return b.RuleID }
func (b *BaseRule) Name() string        { return b.RuleName }
func (b *BaseRule) Description() string { return b.RuleDescription }
func (b *BaseRule) HelpURL() string     { return b.RuleHelpURL }
func (b *BaseRule) CanFix() bool        { return b.Fixable }

// DefaultSeverity returns the configured default, or warning when the
// embedder left it unset.
func (b *BaseRule) DefaultSeverity() config.Severity {
	if b.Severity == "" {
		return config.SeverityWarning
	}
	return b.Severity
}
