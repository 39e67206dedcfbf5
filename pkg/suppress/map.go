package suppress

import "strings"

// Map is the immutable per-line, per-rule suppression decision produced
// by the Processor. The file-wide exclusion applies to every line
// regardless of where its directive appeared.
type Map struct {
	resolver Resolver
	lines    []Exclusion
	fileWide Exclusion
}

// EmptyMap returns a map that suppresses nothing, for callers that skip
// directive processing.
func EmptyMap() *Map {
	return &Map{}
}

// AllSuppressed returns true if every rule is suppressed on the given
// 1-based line.
func (m *Map) AllSuppressed(line int) bool {
	if m.fileWide.All {
		return true
	}
	if line < 1 || line > len(m.lines) {
		return false
	}
	return m.lines[line-1].All
}

// Suppressed returns true if the rule identified by key (canonical ID
// or registered alias, case-insensitive) is suppressed on the given
// 1-based line.
func (m *Map) Suppressed(line int, key string) bool {
	canonical := m.canonicalKey(key)

	if m.fileWide.Excludes(canonical) {
		return true
	}
	if line < 1 || line > len(m.lines) {
		return false
	}
	return m.lines[line-1].Excludes(canonical)
}

// FileSuppressed returns true if the rule is excluded file-wide.
func (m *Map) FileSuppressed(key string) bool {
	return m.fileWide.Excludes(m.canonicalKey(key))
}

// HasSuppressions returns true if any line or the file carries an
// exclusion. Useful as a fast path for documents without directives.
func (m *Map) HasSuppressions() bool {
	if !m.fileWide.IsNone() {
		return true
	}
	for _, e := range m.lines {
		if !e.IsNone() {
			return true
		}
	}
	return false
}

func (m *Map) canonicalKey(key string) string {
	if m.resolver != nil {
		if id, ok := m.resolver.CanonicalID(key); ok {
			return strings.ToLower(id)
		}
	}
	return strings.ToLower(key)
}
