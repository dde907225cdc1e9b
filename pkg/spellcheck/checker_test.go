package spellcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Word-Monger/SpellSieve/pkg/dictionary"
	"github.com/Word-Monger/SpellSieve/pkg/ruleset"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func resultWords(results []SpellCheckResult) []string {
	var words []string
	for _, r := range results {
		words = append(words, r.Word)
	}
	return words
}

func TestCheckFileFlagsMisspelledComment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", `package main

// Show the helllo message now
func main() {
}
`)

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(path)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "helllo", results[0].Word)
	assert.Equal(t, "comment", results[0].Type)
	assert.Equal(t, 3, results[0].LineNumber)
	assert.Contains(t, results[0].Suggestions, "hello")
	assert.Equal(t, "// Show the helllo message now", results[0].Context)
}

func TestCheckFileFlagsDoubledWordInString(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", `package main

func main() {
	message := "check the the message"
	_ = message
}
`)

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(path)
	require.NoError(t, err)

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "doubled", r.Type)
	assert.Equal(t, "the", r.Word)
	assert.Equal(t, 4, r.LineNumber)

	// Deleting the reported columns removes the repeat
	line := []rune(`	message := "check the the message"`)
	remain := string(line[:r.DeleteStart]) + string(line[r.DeleteEnd:])
	assert.Equal(t, `	message := "check the message"`, remain)
}

func TestCheckFileFlagsIdentifierSubWords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", `package main

var misteakCount int
`)

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(path)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "misteak", results[0].Word)
	assert.Equal(t, "identifier", results[0].Type)
}

func TestCheckOptionsDisableRegions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", `package main

// a helllo comment
var misteakCount int
`)

	opts := DefaultCheckOptions()
	opts.CheckComments = false
	opts.CheckIdentifiers = false
	checker := NewChecker(dictionary.New(), nil, dir, opts)
	results, err := checker.CheckPath(path)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCheckDirectoryRecursion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.go", "package main\n\n// a helllo comment\n")
	writeFile(t, dir, "sub/nested.go", "package sub\n\n// a helllo comment\n")
	writeFile(t, dir, "notes.txt", "helllo is not checked here\n")

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(dir)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	opts := DefaultCheckOptions()
	opts.Recursive = false
	checker = NewChecker(dictionary.New(), nil, dir, opts)
	results, err = checker.CheckPath(dir)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestCustomDictionaryWords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "package main\n\n// the spinneret design\n")

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"spinneret"}, resultWords(results))

	dict := dictionary.New()
	dict.AddWords("spinneret")
	checker = NewChecker(dict, nil, dir, DefaultCheckOptions())
	results, err = checker.CheckPath(path)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRulesetScopesIgnoredWords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "legacy/old.go", "package legacy\n\n// the spinneret design\n")
	writeFile(t, dir, "fresh/new.go", "package fresh\n\n// the spinneret design\n")

	rules, err := ruleset.Parse([]byte(`
[[rule]]
pattern = "legacy/**"
ignored_words = ["spinneret"]
`))
	require.NoError(t, err)

	checker := NewChecker(dictionary.New(), rules, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(dir)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "fresh/new.go", filepath.ToSlash(mustRel(t, dir, results[0].FilePath)))
}

func TestRulesetSkipsExcludedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "vendor/lib.go", "package vendor\n\n// a helllo comment\n")
	writeFile(t, dir, "main.go", "package main\n\n// a helllo comment\n")

	rules, err := ruleset.Parse([]byte(`
[[rule]]
pattern = "vendor/**"
skip = true
`))
	require.NoError(t, err)

	checker := NewChecker(dictionary.New(), rules, dir, DefaultCheckOptions())
	results, err := checker.CheckPath(dir)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "main.go", filepath.ToSlash(mustRel(t, dir, results[0].FilePath)))
}

func TestUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "plain text\n")

	checker := NewChecker(dictionary.New(), nil, dir, DefaultCheckOptions())
	_, err := checker.CheckPath(path)
	assert.Error(t, err)
}

func mustRel(t *testing.T, base, target string) string {
	t.Helper()
	rel, err := filepath.Rel(base, target)
	require.NoError(t, err)
	return rel
}
