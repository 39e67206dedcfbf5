// Package langdetect guesses the language of a code snippet. It backs
// the fenced-code-language fix, which needs a fence tag for blocks the
// author left untagged.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be determined with
// reasonable confidence.
const Fallback = "text"

// classifierCandidates bounds the enry classifier to languages that
// commonly appear in fenced blocks. An open-ended classification is
// both slower and noisier.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// heuristics are cheap structural checks tried before the classifier.
// Order matters: earlier entries are more specific.
var heuristics = []func(snippet) string{
	matchGo,
	matchPython,
	matchHTML,
	matchJSON,
	matchDockerfile,
	matchSQL,
	matchRust,
	matchJavaScript,
	matchYAML,
}

// snippet carries the raw bytes plus the views the matchers need, so
// each matcher does not re-trim or re-convert.
type snippet struct {
	raw     []byte
	trimmed []byte
	text    string
}

// Detect returns a fence tag for content, or Fallback when detection
// fails. Shebangs win over everything else; structural heuristics come
// next; the bayesian classifier is the last resort and only trusted
// when enry marks the result safe.
func Detect(content []byte) string {
	if len(content) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	snip := snippet{
		raw:     content,
		trimmed: bytes.TrimSpace(content),
		text:    string(content),
	}
	for _, match := range heuristics {
		if lang := match(snip); lang != "" {
			return lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

func matchGo(s snippet) string {
	if bytes.HasPrefix(s.trimmed, []byte("package ")) {
		return "go"
	}
	return ""
}

func matchPython(s snippet) string {
	if strings.Contains(s.text, "def ") && strings.Contains(s.text, "):") {
		return "python"
	}
	// "import (" is Go's grouped form, not Python.
	if strings.Contains(s.text, "import ") && !strings.Contains(s.text, "import (") {
		if strings.Contains(s.text, "from ") || strings.HasPrefix(strings.TrimSpace(s.text), "import ") {
			return "python"
		}
	}
	if strings.Contains(s.text, "__name__") || strings.Contains(s.text, "__main__") {
		return "python"
	}
	return ""
}

func matchHTML(s snippet) string {
	lower := bytes.ToLower(s.trimmed)
	for _, marker := range [][]byte{
		[]byte("<!doctype html"), []byte("<html"), []byte("<head>"), []byte("<body>"),
	} {
		if bytes.Contains(lower, marker) {
			return "html"
		}
	}
	return ""
}

func matchJSON(s snippet) string {
	if (bytes.HasPrefix(s.trimmed, []byte("{")) || bytes.HasPrefix(s.trimmed, []byte("["))) &&
		bytes.Contains(s.trimmed, []byte(`"`)) {
		return "json"
	}
	return ""
}

func matchDockerfile(s snippet) string {
	if bytes.HasPrefix(s.trimmed, []byte("FROM ")) ||
		(bytes.Contains(s.raw, []byte("\nFROM ")) && bytes.Contains(s.raw, []byte("\nRUN "))) ||
		(bytes.Contains(s.raw, []byte("WORKDIR ")) && bytes.Contains(s.raw, []byte("COPY "))) {
		return "dockerfile"
	}
	return ""
}

func matchSQL(s snippet) string {
	upper := strings.TrimSpace(strings.ToUpper(s.text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return "sql"
		}
	}
	return ""
}

func matchRust(s snippet) string {
	if strings.Contains(s.text, "fn main()") ||
		strings.Contains(s.text, "println!") ||
		strings.Contains(s.text, "let mut ") {
		return "rust"
	}
	return ""
}

func matchJavaScript(s snippet) string {
	if strings.Contains(s.text, "=>") ||
		strings.Contains(s.text, "const ") ||
		strings.Contains(s.text, "let ") ||
		strings.Contains(s.text, "console.log") {
		return "javascript"
	}
	return ""
}

// matchYAML counts root-level "key: value" pairs and list items; two
// or more is taken as YAML. Lines with parens or braces look like code
// and are skipped.
func matchYAML(s snippet) string {
	pairs := 0
	for _, line := range bytes.Split(s.raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			pairs++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			pairs++
		}
	}
	if pairs >= 2 {
		return "yaml"
	}
	return ""
}

// fenceTag converts an enry language name to the tag authors put on
// fences. Shell scripts are conventionally tagged bash.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
