package ruleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Word-Monger/SpellSieve/pkg/splitter"
)

const sampleRules = `
[defaults]
ignore_all_uppercase_words = true
ignored_words = ["spinneret"]

[[rule]]
pattern = "*.cs"
ignore_mnemonics = true
span_string_concatenation = true

[[rule]]
pattern = "legacy/**"
ignore_mixed_case_words = true
ignored_words = ["hwnd"]

[[rule]]
pattern = "legacy/keep/*.cs"
ignore_mixed_case_words = false
`

func TestResolveAppliesDefaultsAndMatchingRules(t *testing.T) {
	rs, err := Parse([]byte(sampleRules))
	require.NoError(t, err)

	cfg, ignored := rs.Resolve("src/Program.cs")
	assert.True(t, cfg.IgnoreAllUppercaseWords)
	assert.True(t, cfg.IgnoreMnemonics)
	assert.True(t, cfg.SpanStringConcatenation)
	assert.False(t, cfg.IgnoreMixedCaseWords)
	assert.Equal(t, []string{"spinneret"}, ignored)

	cfg, ignored = rs.Resolve("legacy/old/Window.cs")
	assert.True(t, cfg.IgnoreMnemonics)
	assert.True(t, cfg.IgnoreMixedCaseWords)
	assert.Equal(t, []string{"spinneret", "hwnd"}, ignored)
}

func TestLaterRulesWin(t *testing.T) {
	rs, err := Parse([]byte(sampleRules))
	require.NoError(t, err)

	// The third rule re-enables case splitting for this subtree
	cfg, _ := rs.Resolve("legacy/keep/Form.cs")
	assert.False(t, cfg.IgnoreMixedCaseWords)
}

func TestResolveNonMatchingFileGetsDefaultsOnly(t *testing.T) {
	rs, err := Parse([]byte(sampleRules))
	require.NoError(t, err)

	cfg, ignored := rs.Resolve("docs/readme.txt")
	assert.True(t, cfg.IgnoreAllUppercaseWords)
	assert.False(t, cfg.IgnoreMnemonics)
	assert.Equal(t, []string{"spinneret"}, ignored)
}

func TestUnsetOptionsKeepDefaults(t *testing.T) {
	rs, err := Parse([]byte("[defaults]\nignore_mnemonics = true\n"))
	require.NoError(t, err)

	// Settings the file never mentions stay at the documented defaults
	cfg, _ := rs.Resolve("any.txt")
	assert.True(t, cfg.IgnoreFilenamesAndEmail)
	assert.True(t, cfg.DetectDoubledWords)
	assert.True(t, cfg.IgnoreMnemonics)
}

func TestCharacterClassValues(t *testing.T) {
	rs, err := Parse([]byte("[defaults]\nignored_character_class = \"non-ascii\"\n"))
	require.NoError(t, err)
	cfg, _ := rs.Resolve("any.txt")
	assert.Equal(t, splitter.IgnoreNonASCII, cfg.IgnoredCharacterClass)

	_, err = Parse([]byte("[defaults]\nignored_character_class = \"cyrillic\"\n"))
	assert.Error(t, err)
}

func TestExcluded(t *testing.T) {
	rs, err := Parse([]byte(`
[[rule]]
pattern = "vendor/**"
skip = true

[[rule]]
pattern = "vendor/patched/*.go"
skip = false
`))
	require.NoError(t, err)

	assert.True(t, rs.Excluded("vendor/lib/util.go"))
	assert.False(t, rs.Excluded("vendor/patched/fix.go"))
	assert.False(t, rs.Excluded("src/main.go"))
}

func TestParseErrors(t *testing.T) {
	// Unknown keys fail the load
	_, err := Parse([]byte("[defaults]\nignore_mnemnics = true\n"))
	assert.Error(t, err)

	// A rule without a pattern fails the load
	_, err = Parse([]byte("[[rule]]\nignore_mnemonics = true\n"))
	assert.Error(t, err)

	// A rule with an invalid glob fails the load
	_, err = Parse([]byte("[[rule]]\npattern = \"src/[z-a].cs\"\n"))
	assert.Error(t, err)

	// Broken TOML fails the load
	_, err = Parse([]byte("not toml ["))
	assert.Error(t, err)
}
