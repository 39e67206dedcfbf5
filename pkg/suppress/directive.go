package suppress

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Action identifies what a directive instructs the processor to do.
type Action uint8

const (
	ActionDisable Action = iota
	ActionEnable
	ActionDisableLine
	ActionDisableNextLine
	ActionDisableFile
	ActionConfigureFile
	ActionCapture
	ActionRestore
)

// Directive is one parsed suppression directive.
type Directive struct {
	// Action is the directive's effect on the processor state.
	Action Action

	// Keys holds the rule identifiers or alias names the directive
	// applies to, lowercased. Empty means "all rules" for the disable
	// family and "reset" for enable.
	Keys []string
}

// directivePattern matches suppression comments. The marker and action
// are matched case-insensitively; interior whitespace is tolerant.
// Malformed comments (unknown action, missing hyphen) simply fail to
// match a known action and are dropped by parseDirectives.
var directivePattern = regexp.MustCompile(
	`(?i)<!--\s*markdownlint-([a-z-]+)\b([^>]*?)-->`,
)

// actionNames maps the directive token to its action.
var actionNames = map[string]Action{
	"disable":           ActionDisable,
	"enable":            ActionEnable,
	"disable-line":      ActionDisableLine,
	"disable-next-line": ActionDisableNextLine,
	"disable-file":      ActionDisableFile,
	"configure-file":    ActionConfigureFile,
	"capture":           ActionCapture,
	"restore":           ActionRestore,
}

// parseDirectives extracts all well-formed directives from a line, in
// order of appearance. Malformed directives are silently dropped.
func parseDirectives(line []byte) []Directive {
	matches := directivePattern.FindAllSubmatch(line, -1)
	if matches == nil {
		return nil
	}

	var out []Directive
	for _, m := range matches {
		token := strings.ToLower(string(m[1]))
		args := strings.TrimSpace(string(m[2]))

		action, ok := actionNames[token]
		if !ok {
			continue
		}

		d := Directive{Action: action}
		switch action {
		case ActionConfigureFile:
			keys, ok := parseConfigureFile(args)
			if !ok {
				continue
			}
			d.Action = ActionDisableFile
			d.Keys = keys
			if len(keys) == 0 {
				// Nothing disabled; the directive has no effect.
				continue
			}
		case ActionCapture, ActionRestore:
			// No arguments expected; extra tokens are tolerated.
		default:
			d.Keys = splitKeys(args)
		}

		out = append(out, d)
	}

	return out
}

// splitKeys tokenizes a whitespace/comma-separated rule list,
// lowercasing each entry.
func splitKeys(args string) []string {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, strings.ToLower(f))
	}
	return keys
}

// parseConfigureFile extracts the rule keys explicitly mapped to a
// disabling value in a configure-file JSON object. Returns ok=false
// for malformed JSON, which the caller ignores silently.
func parseConfigureFile(args string) ([]string, bool) {
	if args == "" {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(args), &obj); err != nil {
		return nil, false
	}

	var keys []string
	for key, value := range obj {
		if disabled, ok := value.(bool); ok && !disabled {
			keys = append(keys, strings.ToLower(key))
		}
	}
	return keys, true
}
