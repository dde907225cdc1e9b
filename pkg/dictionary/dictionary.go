// Package dictionary provides the word oracle consulted by the scanners:
// whether a word should be ignored outright, whether it is spelled
// correctly, and what the likely intended spellings are. The built-in
// Dictionary combines an embedded English word list with a programming
// vocabulary and backs its suggestions with a fuzzy spelling model.
package dictionary

import (
	"log"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

// Oracle answers the two questions a scanner asks about a word. ShouldIgnore
// is consulted first; only words it declines are looked up for spelling.
type Oracle interface {
	ShouldIgnore(word string) bool
	IsSpelledCorrectly(word string) bool
}

// Dictionary is the built-in Oracle: an embedded English word list, a
// programming-term vocabulary, plus caller-supplied custom and ignored
// words. The suggestion model is trained on first use; lookups never
// trigger training. Safe for concurrent use after construction, provided
// AddWords and IgnoreWords are not called concurrently with lookups.
type Dictionary struct {
	words   map[string]bool
	ignored map[string]bool

	modelOnce sync.Once
	model     *fuzzy.Model
}

// New creates a Dictionary over the embedded word list and the common
// programming vocabulary
func New() *Dictionary {
	d := &Dictionary{
		words:   loadEmbeddedWords(),
		ignored: make(map[string]bool),
	}
	for word := range programmingTerms {
		d.words[word] = true
	}
	return d
}

// AddWords adds custom words treated as spelled correctly
func (d *Dictionary) AddWords(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.words[w] = true
		}
	}
}

// IgnoreWords adds words that ShouldIgnore reports true for
func (d *Dictionary) IgnoreWords(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			d.ignored[w] = true
		}
	}
}

// ShouldIgnore reports whether the word was registered as ignored
func (d *Dictionary) ShouldIgnore(word string) bool {
	return d.ignored[strings.ToLower(word)]
}

// IsSpelledCorrectly reports whether the word is in the dictionary. Words
// of one or two letters are always considered correct; they are almost
// never worth flagging.
func (d *Dictionary) IsSpelledCorrectly(word string) bool {
	lower := strings.ToLower(word)
	if len([]rune(lower)) <= 2 {
		return true
	}
	if d.words[lower] {
		return true
	}
	// Possessives are judged by their base word
	if base, ok := strings.CutSuffix(lower, "'s"); ok {
		return d.words[base]
	}
	return false
}

// Suggest returns up to max likely intended spellings for a misspelled
// word, best first. The fuzzy model is trained on the first call.
func (d *Dictionary) Suggest(word string, max int) []string {
	if max <= 0 {
		return nil
	}
	d.modelOnce.Do(d.trainModel)

	lower := strings.ToLower(word)
	suggestions := d.model.SpellCheckSuggestions(lower, max)

	// The model may echo the input itself; that is not a suggestion
	out := suggestions[:0]
	for _, s := range suggestions {
		if s != lower {
			out = append(out, s)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// trainModel builds the fuzzy model from the dictionary contents
func (d *Dictionary) trainModel() {
	model := fuzzy.NewModel()
	model.SetDepth(2)     // Maximum edit distance
	model.SetThreshold(1) // Minimum frequency threshold

	count := 0
	for word := range d.words {
		model.TrainWord(word)
		count++
	}
	log.Printf("[Dictionary] Trained suggestion model with %d words", count)

	d.model = model
}

// programmingTerms lists identifiers and abbreviations common in source
// code that no English word list carries
var programmingTerms = map[string]bool{
	"args": true, "argv": true, "argc": true, "async": true, "attr": true,
	"auth": true, "bool": true, "boolean": true, "calc": true, "cfg": true,
	"chan": true, "cmd": true, "cmds": true, "config": true, "const": true,
	"cpu": true, "ctx": true, "ctor": true, "db": true, "deps": true,
	"dest": true, "dir": true, "dirs": true, "dll": true, "dst": true,
	"enum": true, "env": true, "eof": true, "eol": true, "err": true,
	"eval": true, "exe": true, "exec": true, "expr": true, "fmt": true,
	"func": true, "goroutine": true, "gui": true, "html": true, "http": true,
	"https": true, "idx": true, "impl": true, "init": true, "int": true,
	"io": true, "iter": true, "json": true, "len": true, "lhs": true,
	"lib": true, "libs": true, "lint": true, "linter": true, "malloc": true,
	"metadata": true, "misc": true, "mutex": true, "nil": true, "num": true,
	"os": true, "param": true, "params": true, "pkg": true, "prev": true,
	"printf": true, "println": true, "proc": true, "ptr": true, "regex": true,
	"repo": true, "req": true, "res": true, "rhs": true, "sdk": true,
	"sql": true, "src": true, "stderr": true, "stdin": true, "stdout": true,
	"str": true, "struct": true, "temp": true, "tmp": true, "todo": true,
	"toml": true, "ui": true, "uri": true, "url": true, "usr": true,
	"util": true, "utils": true, "uuid": true, "val": true, "vals": true,
	"var": true, "vars": true, "xml": true, "yaml": true,
}
