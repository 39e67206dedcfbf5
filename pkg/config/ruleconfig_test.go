package config_test

import (
	"testing"

	"github.com/yaklabco/marklint/pkg/config"
)

func TestResolve_ScalarWithSeverity(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("atx:error", nil)

	if !cfg.Enabled {
		t.Error("expected rule to be enabled")
	}
	if cfg.Severity != config.SeverityError {
		t.Errorf("expected error severity, got %q", cfg.Severity)
	}
	if cfg.ScalarValue != "atx" {
		t.Errorf("expected scalar %q, got %q", "atx", cfg.ScalarValue)
	}
}

func TestResolve_NoSuffixDefaultsToWarning(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("120", nil)

	if cfg.Severity != config.SeverityWarning {
		t.Errorf("expected warning severity, got %q", cfg.Severity)
	}
	if cfg.ScalarValue != "120" {
		t.Errorf("expected scalar %q, got %q", "120", cfg.ScalarValue)
	}
}

func TestResolve_NoneDisables(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("atx:none", nil)

	if cfg.Enabled {
		t.Error("expected rule to be disabled by :none suffix")
	}
}

func TestResolve_FalseDisablesRegardlessOfSuffix(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"false", "false:error", "FALSE:warning"} {
		cfg := config.Resolve(raw, nil)
		if cfg.Enabled {
			t.Errorf("Resolve(%q): expected disabled", raw)
		}
	}
}

func TestResolve_UnknownSuffixIsPartOfValue(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("http://example.com", nil)

	if cfg.ScalarValue != "http://example.com" {
		t.Errorf("unexpected scalar %q", cfg.ScalarValue)
	}
	if cfg.Severity != config.SeverityWarning {
		t.Errorf("expected default severity, got %q", cfg.Severity)
	}
}

func TestResolve_EmptyValue(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("", nil)

	if !cfg.Enabled {
		t.Error("expected enabled by default")
	}
	if cfg.HasScalar {
		t.Error("expected no scalar value")
	}
}

func TestRuleConfig_NamedParameterWinsOverScalar(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("80", map[string]string{"line_length": "120"})

	if got := cfg.Int("line_length", 0); got != 120 {
		t.Errorf("expected named parameter 120, got %d", got)
	}
}

func TestRuleConfig_ScalarFallback(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("120", nil)

	if got := cfg.Int("line_length", 80); got != 120 {
		t.Errorf("expected scalar fallback 120, got %d", got)
	}
}

func TestRuleConfig_GettersFailClosed(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("not-a-number", map[string]string{"flag": "not-a-bool"})

	if got := cfg.Int("line_length", 80); got != 80 {
		t.Errorf("Int: expected default 80, got %d", got)
	}
	if got := cfg.Bool("flag", true); got != true {
		t.Errorf("Bool: expected default true, got %v", got)
	}
	if got := cfg.String("missing", ""); got != "not-a-number" {
		// Scalar fallback still applies for strings.
		t.Errorf("String: expected scalar fallback, got %q", got)
	}
}

func TestRuleConfig_SeveritySuffixWithParams(t *testing.T) {
	t.Parallel()

	cfg := config.Resolve("atx_closed:suggestion", map[string]string{"style": "atx"})

	if cfg.Severity != config.SeveritySuggestion {
		t.Errorf("expected suggestion severity, got %q", cfg.Severity)
	}
	if got := cfg.String("style", ""); got != "atx" {
		t.Errorf("expected named parameter to win, got %q", got)
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want config.Severity
		ok   bool
	}{
		{"error", config.SeverityError, true},
		{"Warning", config.SeverityWarning, true},
		{" suggestion ", config.SeveritySuggestion, true},
		{"SILENT", config.SeveritySilent, true},
		{"none", config.SeverityNone, true},
		{"fatal", config.SeverityWarning, false},
		{"", config.SeverityWarning, false},
	}

	for _, tc := range cases {
		got, ok := config.ParseSeverity(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseSeverity(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
