package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryLookups(t *testing.T) {
	d := New()

	assert.True(t, d.IsSpelledCorrectly("hello"))
	assert.True(t, d.IsSpelledCorrectly("Hello"))
	assert.True(t, d.IsSpelledCorrectly("WORLD"))
	assert.False(t, d.IsSpelledCorrectly("helllo"))
	assert.False(t, d.IsSpelledCorrectly("qzxqzx"))

	// Programming vocabulary is part of the dictionary
	assert.True(t, d.IsSpelledCorrectly("goroutine"))
	assert.True(t, d.IsSpelledCorrectly("stderr"))

	// One- and two-letter words are never flagged
	assert.True(t, d.IsSpelledCorrectly("ab"))
	assert.True(t, d.IsSpelledCorrectly("x"))
}

func TestCustomAndIgnoredWords(t *testing.T) {
	d := New()

	assert.False(t, d.IsSpelledCorrectly("spinneret"))
	d.AddWords("Spinneret")
	assert.True(t, d.IsSpelledCorrectly("spinneret"))
	assert.True(t, d.IsSpelledCorrectly("SPINNERET"))

	assert.False(t, d.ShouldIgnore("placeholder"))
	d.IgnoreWords("Placeholder")
	assert.True(t, d.ShouldIgnore("placeholder"))
	assert.True(t, d.ShouldIgnore("PLACEHOLDER"))
}

func TestSuggestions(t *testing.T) {
	d := New()

	suggestions := d.Suggest("helllo", 5)
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "hello")
	assert.LessOrEqual(t, len(suggestions), 5)

	assert.Nil(t, d.Suggest("helllo", 0))
}

func TestSessionCacheIsolation(t *testing.T) {
	d := New()
	first := NewSessionCache(d)
	second := NewSessionCache(d)

	first.IgnoreWord("flurble")
	assert.True(t, first.ShouldIgnore("flurble"))
	assert.True(t, first.ShouldIgnore("Flurble"))

	// The second session and the dictionary itself are unaffected
	assert.False(t, second.ShouldIgnore("flurble"))
	assert.False(t, d.ShouldIgnore("flurble"))
}

func TestSessionCacheMemoizesOracle(t *testing.T) {
	d := New()
	cache := NewSessionCache(d)

	assert.True(t, cache.IsSpelledCorrectly("hello"))

	// Dictionary changes after the first lookup are not observed; the
	// session answers from its memo
	assert.False(t, cache.IsSpelledCorrectly("flurble"))
	d.AddWords("flurble")
	assert.False(t, cache.IsSpelledCorrectly("flurble"))
	assert.True(t, d.IsSpelledCorrectly("flurble"))
}
