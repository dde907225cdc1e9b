package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identifierWords runs SplitIdentifier and resolves the spans back to text
func identifierWords(identifier string, cfg Config) []string {
	rs := []rune(identifier)
	var words []string
	for _, sp := range SplitIdentifier(identifier, cfg) {
		words = append(words, string(rs[sp.Start:sp.End]))
	}
	return words
}

func TestSplitIdentifier(t *testing.T) {
	tests := []struct {
		identifier string
		want       []string
	}{
		{"getUserIDs", []string{"get", "User", "IDs"}},
		{"parse_xml_data", []string{"parse", "xml", "data"}},
		{"HTTPClient", []string{"HTTP", "Client"}},
		{"XMLHTTPRequest", []string{"XMLHTTP", "Request"}},
		{"readFile2Buffer", []string{"read", "File", "Buffer"}},
		{"x", nil},
		{"__", nil},
	}

	for _, tt := range tests {
		got := identifierWords(tt.identifier, DefaultConfig())
		assert.Equal(t, tt.want, got, "identifier %q", tt.identifier)
	}
}

func TestSplitIdentifierSkipsAllUppercase(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreAllUppercaseWords = true

	assert.Nil(t, identifierWords("MAX_BUFFER_SIZE", cfg))

	// Without the flag the segments come through
	got := identifierWords("MAX_BUFFER_SIZE", DefaultConfig())
	assert.Equal(t, []string{"MAX", "BUFFER", "SIZE"}, got)
}

func TestCaseRunsAcronymBoundaries(t *testing.T) {
	// The final letter of an acronym run starts the following sub-word,
	// except for a trailing plural 's'
	runs := caseRuns([]rune("HTTPServer"))
	assert.Equal(t, [][2]int{{0, 4}, {4, 10}}, runs)

	runs = caseRuns([]rune("IDs"))
	assert.Equal(t, [][2]int{{0, 3}}, runs)

	runs = caseRuns([]rune("ALLUPPER"))
	assert.Equal(t, [][2]int{{0, 8}}, runs)
}

func TestNeedsCaseSplit(t *testing.T) {
	assert.True(t, needsCaseSplit([]rune("camelCase")))
	assert.True(t, needsCaseSplit([]rune("PascalCase")))
	assert.False(t, needsCaseSplit([]rune("plain")))
	assert.False(t, needsCaseSplit([]rune("Single")))
	assert.False(t, needsCaseSplit([]rune("ACRONYM")))
	assert.False(t, needsCaseSplit([]rune("9Lives")))
}
