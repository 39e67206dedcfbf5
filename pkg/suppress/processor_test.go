package suppress_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/marklint/pkg/document"
	"github.com/yaklabco/marklint/pkg/suppress"
)

// aliasResolver is a minimal Resolver for tests.
type aliasResolver map[string]string

func (r aliasResolver) CanonicalID(key string) (string, bool) {
	id, ok := r[strings.ToLower(key)]
	return id, ok
}

var testResolver = aliasResolver{
	"md001":              "MD001",
	"md009":              "MD009",
	"heading-increment":  "MD001",
	"no-trailing-spaces": "MD009",
}

func process(t *testing.T, text string) *suppress.Map {
	t.Helper()
	ix := document.NewIndex("", []byte(text), nil)
	return suppress.NewProcessor(testResolver).Process(ix)
}

func TestProcess_DisableEnableWindow(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable MD001 -->\n"+
		"### Skipped\n"+
		"<!-- markdownlint-enable -->\n"+
		"### Skipped2\n")

	if !m.Suppressed(2, "MD001") {
		t.Error("MD001 should be suppressed on line 2")
	}
	if m.Suppressed(4, "MD001") {
		t.Error("MD001 should not be suppressed on line 4")
	}
}

func TestProcess_DisableTakesEffectOnItsOwnLine(t *testing.T) {
	t.Parallel()

	m := process(t, "text <!-- markdownlint-disable MD009 -->  \nmore  \n")

	if !m.Suppressed(1, "MD009") {
		t.Error("directive line itself should be suppressed")
	}
	if !m.Suppressed(2, "MD009") {
		t.Error("following line should be suppressed")
	}
}

func TestProcess_BareDisableSuppressesAllRules(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable -->\nanything\n")

	if !m.AllSuppressed(2) {
		t.Error("all rules should be suppressed after bare disable")
	}
	if !m.Suppressed(2, "MD013") {
		t.Error("unregistered rule IDs are suppressed too under AllRules")
	}
}

func TestProcess_EnableWithIDsNarrowsNamedSet(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable MD001 MD009 -->\n"+
		"<!-- markdownlint-enable MD001 -->\n"+
		"text\n")

	if m.Suppressed(3, "MD001") {
		t.Error("MD001 was re-enabled")
	}
	if !m.Suppressed(3, "MD009") {
		t.Error("MD009 should remain suppressed")
	}
}

func TestProcess_DisableLine(t *testing.T) {
	t.Parallel()

	m := process(t, "clean\nbad <!-- markdownlint-disable-line MD009 -->\nclean\n")

	if m.Suppressed(1, "MD009") || m.Suppressed(3, "MD009") {
		t.Error("only the directive line should be suppressed")
	}
	if !m.Suppressed(2, "MD009") {
		t.Error("directive line should be suppressed")
	}
}

func TestProcess_DisableNextLine(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable-next-line MD001 -->\n### target\nafter\n")

	if m.Suppressed(1, "MD001") {
		t.Error("the directive line itself is not suppressed")
	}
	if !m.Suppressed(2, "MD001") {
		t.Error("the next line should be suppressed")
	}
	if m.Suppressed(3, "MD001") {
		t.Error("suppression must not extend past the next line")
	}
}

func TestProcess_DisableNextLineOnLastLineIsHarmless(t *testing.T) {
	t.Parallel()

	m := process(t, "text\n<!-- markdownlint-disable-next-line -->")

	for line := 1; line <= 2; line++ {
		if m.AllSuppressed(line) {
			t.Errorf("line %d should not be suppressed", line)
		}
	}
}

func TestProcess_DisableFileIsRetroactive(t *testing.T) {
	t.Parallel()

	m := process(t, "### early violation\n"+
		"middle\n"+
		"<!-- markdownlint-disable-file MD001 -->\n")

	if !m.Suppressed(1, "MD001") {
		t.Error("disable-file must apply to lines before the directive")
	}
	if !m.FileSuppressed("MD001") {
		t.Error("MD001 should be file-suppressed")
	}
	if m.Suppressed(1, "MD009") {
		t.Error("other rules are unaffected")
	}
}

func TestProcess_BareDisableFileSuppressesEverything(t *testing.T) {
	t.Parallel()

	m := process(t, "a\n<!-- markdownlint-disable-file -->\nb\n")

	if !m.AllSuppressed(1) || !m.AllSuppressed(3) {
		t.Error("bare disable-file suppresses every line")
	}
}

func TestProcess_ConfigureFileDisablingValues(t *testing.T) {
	t.Parallel()

	m := process(t, `<!-- markdownlint-configure-file {"MD001": false, "MD009": true} -->`+"\ntext\n")

	if !m.Suppressed(2, "MD001") {
		t.Error("MD001 mapped to false should be file-suppressed")
	}
	if m.Suppressed(2, "MD009") {
		t.Error("MD009 mapped to true must not be suppressed")
	}
}

func TestProcess_ConfigureFileDefaultFalse(t *testing.T) {
	t.Parallel()

	m := process(t, `<!-- markdownlint-configure-file {"default": false} -->`+"\ntext\n")

	if !m.AllSuppressed(2) {
		t.Error(`{"default": false} should suppress all rules`)
	}
}

func TestProcess_CaptureRestore(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable MD001 -->\n"+
		"a\n"+
		"<!-- markdownlint-capture -->\n"+
		"<!-- markdownlint-disable MD009 -->\n"+
		"b\n"+
		"<!-- markdownlint-restore -->\n"+
		"c\n")

	// Inside the capture window, both are suppressed.
	if !m.Suppressed(5, "MD001") || !m.Suppressed(5, "MD009") {
		t.Error("both rules suppressed before restore")
	}

	// After restore, MD001 remains suppressed, MD009 does not.
	if !m.Suppressed(7, "MD001") {
		t.Error("MD001 should remain suppressed after restore")
	}
	if m.Suppressed(7, "MD009") {
		t.Error("MD009 should be cleared by restore")
	}
}

func TestProcess_RestoreWithoutCaptureResets(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-disable MD001 -->\n"+
		"<!-- markdownlint-restore -->\n"+
		"text\n")

	if m.Suppressed(3, "MD001") {
		t.Error("restore on an empty stack must reset to no exclusion, not no-op")
	}
}

func TestProcess_AliasAndCaseInsensitiveMatching(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- MARKDOWNLINT-DISABLE no-trailing-spaces -->\ntext  \n")

	if !m.Suppressed(2, "MD009") {
		t.Error("alias in directive should suppress the canonical rule")
	}
	if !m.Suppressed(2, "md009") {
		t.Error("query by lowercase ID should match")
	}
	if !m.Suppressed(2, "no-trailing-spaces") {
		t.Error("query by alias should match")
	}
}

func TestProcess_MalformedDirectivesAreIgnored(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-nonsense MD001 -->\n"+
		"<!-- markdownlint disable MD001 -->\n"+
		"<!-- markdownlint-configure-file not-json -->\n"+
		"### text\n")

	if m.Suppressed(4, "MD001") {
		t.Error("malformed directives must cause no state change")
	}
}

func TestProcess_TolerantWhitespaceAndCommas(t *testing.T) {
	t.Parallel()

	m := process(t, "<!--   markdownlint-disable   MD001 , MD009   -->\ntext\n")

	if !m.Suppressed(2, "MD001") || !m.Suppressed(2, "MD009") {
		t.Error("comma/whitespace separated keys should all apply")
	}
}

func TestProcess_NestedCaptureRestore(t *testing.T) {
	t.Parallel()

	m := process(t, "<!-- markdownlint-capture -->\n"+
		"<!-- markdownlint-disable MD001 -->\n"+
		"<!-- markdownlint-capture -->\n"+
		"<!-- markdownlint-disable MD009 -->\n"+
		"x\n"+
		"<!-- markdownlint-restore -->\n"+
		"y\n"+
		"<!-- markdownlint-restore -->\n"+
		"z\n")

	if !m.Suppressed(5, "MD009") {
		t.Error("inner window suppresses MD009")
	}
	if m.Suppressed(7, "MD009") || !m.Suppressed(7, "MD001") {
		t.Error("first restore returns to MD001-only state")
	}
	if m.Suppressed(9, "MD001") {
		t.Error("second restore returns to the empty initial state")
	}
}

func TestMap_EmptyMapSuppressesNothing(t *testing.T) {
	t.Parallel()

	m := suppress.EmptyMap()
	if m.Suppressed(1, "MD001") || m.AllSuppressed(1) || m.HasSuppressions() {
		t.Error("empty map must suppress nothing")
	}
}

func TestMap_HasSuppressions(t *testing.T) {
	t.Parallel()

	if process(t, "plain text\n").HasSuppressions() {
		t.Error("no directives, no suppressions")
	}
	if !process(t, "<!-- markdownlint-disable-line -->\n").HasSuppressions() {
		t.Error("disable-line should register")
	}
}
