package configsource_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/marklint/pkg/configsource"
)

type aliasResolver map[string]string

func (r aliasResolver) CanonicalID(key string) (string, bool) {
	id, ok := r[strings.ToLower(key)]
	return id, ok
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marklint.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_ScalarAndMapping(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
rules:
  MD009: "true:error"
  MD003: atx
  MD013:
    value: true
    line_length: 100
    code_blocks: false
`)

	src := configsource.NewFileSource(path, nil)
	require.NoError(t, src.Reload())

	v, ok := src.RuleValue("MD009")
	require.True(t, ok)
	assert.Equal(t, "true:error", v)

	v, ok = src.RuleValue("md003")
	require.True(t, ok)
	assert.Equal(t, "atx", v)

	v, ok = src.RuleValue("MD013")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	params := src.RuleParams("MD013")
	require.NotNil(t, params)
	assert.Equal(t, "100", params["line_length"])
	assert.Equal(t, "false", params["code_blocks"])

	_, ok = src.RuleValue("MD999")
	assert.False(t, ok)
	assert.Nil(t, src.RuleParams("MD999"))
}

func TestFileSource_ResolverNormalizesKeys(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
rules:
  No-Trailing-Spaces: "false"
  unknown-rule: "true"
`)

	resolver := aliasResolver{"no-trailing-spaces": "md009"}
	src := configsource.NewFileSource(path, resolver)
	require.NoError(t, src.Reload())

	v, ok := src.RuleValue("MD009")
	require.True(t, ok)
	assert.Equal(t, "false", v)

	// Unknown keys survive lowercased so validation can flag them.
	v, ok = src.RuleValue("unknown-rule")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileSource_IdentityTracksContent(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "rules:\n  MD009: \"true\"\n")

	src := configsource.NewFileSource(path, nil)
	require.NoError(t, src.Reload())
	first := src.Identity()
	require.NotEmpty(t, first)

	// Same content, same identity.
	require.NoError(t, src.Reload())
	assert.Equal(t, first, src.Identity())

	// Changed content, new identity.
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  MD009: \"false\"\n"), 0o644))
	require.NoError(t, src.Reload())
	assert.NotEqual(t, first, src.Identity())

	v, _ := src.RuleValue("MD009")
	assert.Equal(t, "false", v)
}

func TestFileSource_Invalidate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "rules:\n  MD009: \"true\"\n")

	src := configsource.NewFileSource(path, nil)
	require.NoError(t, src.Reload())

	src.Invalidate()
	_, ok := src.RuleValue("MD009")
	assert.False(t, ok, "invalidated source must report nothing until reloaded")

	require.NoError(t, src.Reload())
	_, ok = src.RuleValue("MD009")
	assert.True(t, ok)
}

func TestFileSource_MissingFile(t *testing.T) {
	t.Parallel()

	src := configsource.NewFileSource(filepath.Join(t.TempDir(), "absent.yml"), nil)
	require.NoError(t, src.Reload())

	_, ok := src.RuleValue("MD009")
	assert.False(t, ok)
	assert.NotEmpty(t, src.Identity())
}

func TestFileSource_ParseError(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "rules: [not a mapping\n")
	src := configsource.NewFileSource(path, nil)
	assert.Error(t, src.Reload())
}

func TestFileSource_NonScalarParameter(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
rules:
  MD013:
    line_length: [100, 120]
`)
	src := configsource.NewFileSource(path, nil)
	assert.Error(t, src.Reload())
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	resolver := aliasResolver{"line-length": "md013"}
	src := configsource.NewMapSource(resolver)

	first := src.Identity()
	src.Set("Line-Length", "true:suggestion")
	src.SetParam("line-length", "Line_Length", "120")

	assert.NotEqual(t, first, src.Identity(), "mutation must change identity")

	v, ok := src.RuleValue("MD013")
	require.True(t, ok)
	assert.Equal(t, "true:suggestion", v)
	assert.Equal(t, "120", src.RuleParams("md013")["line_length"])

	assert.Equal(t, []string{"md013"}, src.Rules())
}
