// Package config defines rule configuration types for marklint.
// Raw configuration values arrive as untyped strings from external
// providers; this package resolves them into typed values.
package config

import "strings"

// Severity represents the reporting level of a diagnostic.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
	SeveritySilent     Severity = "silent"

	// SeverityNone disables the rule entirely. It is a valid suffix in
	// configuration strings but never appears on an emitted violation.
	SeverityNone Severity = "none"
)

// DefaultSeverity is used when a configuration string carries no suffix.
const DefaultSeverity = SeverityWarning

// ParseSeverity converts a string to a Severity.
// Returns (severity, true) for known levels, (DefaultSeverity, false) otherwise.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityError:
		return SeverityError, true
	case SeverityWarning:
		return SeverityWarning, true
	case SeveritySuggestion:
		return SeveritySuggestion, true
	case SeveritySilent:
		return SeveritySilent, true
	case SeverityNone:
		return SeverityNone, true
	default:
		return DefaultSeverity, false
	}
}

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	_, ok := ParseSeverity(string(s))
	return ok
}

// Reportable returns true if violations at this severity should be emitted.
func (s Severity) Reportable() bool {
	return s != SeverityNone
}
