// Package splitter turns raw text spans into a stream of spell-checkable
// word candidates. A single left-to-right scan skips escape sequences, XML
// entities, and format specifiers, breaks the remainder into words under
// configurable break rules, flags doubled words, and splits camelCase and
// PascalCase words into their sub-words. Malformed input (unterminated
// escapes, truncated sequences) never raises an error; the scanner falls
// back to treating the ambiguous text as ordinary characters.
package splitter

import (
	"regexp"
	"strings"
	"unicode"
)

// concatGlue matches the string-concatenation idiom between two string
// literals: closing quote, optional operator, optional verbatim prefix,
// opening quote
var concatGlue = regexp.MustCompile(`"\s*[+&]?\s*[@$R]*"`)

// Scanner produces word spans from one text under one configuration. Use
// it like bufio.Scanner: call Scan until it reports false, reading the
// current item with Word. A Scanner resumes where the previous Scan left
// off and is not safe for concurrent use; independent Scanners are fully
// independent. To restart a scan, create a new Scanner over the same text.
type Scanner struct {
	text []rune
	cfg  Config

	pos        int
	cur        Word
	pending    []Word
	inVerbatim bool

	prevSpan  Span
	prevText  string
	prevValid bool
}

// Split creates a Scanner over the text. The configuration is bound for
// the lifetime of the scan and read only.
func Split(text string, cfg Config) *Scanner {
	return &Scanner{text: []rune(text), cfg: cfg}
}

// SplitAll runs a complete scan and returns every produced word
func SplitAll(text string, cfg Config) []Word {
	var words []Word
	s := Split(text, cfg)
	for s.Scan() {
		words = append(words, s.Word())
	}
	return words
}

// Word returns the item produced by the last successful Scan
func (s *Scanner) Word() Word {
	return s.cur
}

// Text returns the text covered by a span from this scanner's input
func (s *Scanner) Text(sp Span) string {
	if sp.Start < 0 || sp.End > len(s.text) || sp.Start > sp.End {
		return ""
	}
	return string(s.text[sp.Start:sp.End])
}

// ActualWord returns the current word's text ready for dictionary lookup:
// concatenation glue and elided mnemonic characters are stripped
func (s *Scanner) ActualWord() string {
	w := s.Text(s.cur.Span)
	if s.cfg.SpanStringConcatenation && strings.ContainsRune(w, '"') {
		w = concatGlue.ReplaceAllString(w, "")
	}
	if s.cfg.IgnoreMnemonics {
		w = strings.ReplaceAll(w, string(s.cfg.mnemonic()), "")
	}
	return w
}

// Scan advances to the next word candidate. It reports false when the text
// is exhausted.
func (s *Scanner) Scan() bool {
	// Case splitting may have queued sub-words of the previous candidate
	if len(s.pending) > 0 {
		s.cur = s.pending[0]
		s.pending = s.pending[1:]
		return true
	}

	for s.pos < len(s.text) {
		r := s.text[s.pos]

		if r == '\\' {
			// Configured escaped-ignored words (Doxygen tags and the like)
			// are skipped whole regardless of the escape settings
			if n := s.escapedIgnoredWordLen(); n > 0 {
				s.pos += n
				continue
			}
			// Inside a verbatim string a backslash is an ordinary path
			// separator, not an escape
			if s.cfg.CanContainEscapes && s.cfg.IsCStyleCode && !s.inVerbatim {
				if n := escapeLen(s.text[s.pos:]); n > 0 {
					s.pos += n
					continue
				}
			}
			s.pos++
			continue
		}

		if r == '&' {
			if n := entityLen(s.text[s.pos:]); n > 0 {
				s.pos += n
				continue
			}
		}

		if s.cfg.IgnoreFormatSpecifiers {
			if r == '{' {
				if n := braceSpecLen(s.text[s.pos:]); n > 0 {
					s.pos += n
					continue
				}
			}
			if r == '%' {
				if n := printfSpecLen(s.text[s.pos:]); n > 0 {
					s.pos += n
					continue
				}
			}
		}

		if r == '"' {
			s.noteQuote(s.pos)
			s.pos++
			continue
		}

		if s.isBreak(s.pos) {
			s.pos++
			continue
		}

		// A maximal run of non-break characters
		start := s.pos
		s.collectWord()
		if s.cfg.SpanStringConcatenation {
			s.extendAcrossConcatenation()
		}
		sp := s.trimWord(Span{Start: start, End: s.pos})
		if sp.Len() <= 1 {
			continue
		}
		word := s.Text(sp)

		// Doubled word: identical to the previous accepted word with only
		// whitespace in between. The flagged occurrence does not become
		// the new previous word, so in a triple repeat only the second
		// occurrence is flagged (the third is separated from the first by
		// more than whitespace).
		if s.cfg.DetectDoubledWords && s.prevValid &&
			strings.EqualFold(word, s.prevText) &&
			s.whitespaceOnly(s.prevSpan.End, sp.Start) {
			s.cur = Word{
				Span: sp,
				Doubled: &DoubledWord{
					Word:   sp,
					Delete: Span{Start: s.prevSpan.End, End: sp.End},
					Text:   word,
				},
			}
			return true
		}

		s.prevSpan = sp
		s.prevText = word
		s.prevValid = true

		// Case-run splitting, unless the word is configured to stay whole
		rs := s.text[sp.Start:sp.End]
		if !s.cfg.IgnoreMixedCaseWords && needsCaseSplit(rs) &&
			!s.cfg.isKeptWholeTerm(word) && !containsSpecialBreakChar(rs) {
			words := s.caseSplit(sp)
			if len(words) > 0 {
				s.cur = words[0]
				s.pending = words[1:]
				return true
			}
			continue
		}

		s.cur = Word{Span: sp}
		return true
	}

	return false
}

// collectWord advances the cursor over word characters
func (s *Scanner) collectWord() {
	for s.pos < len(s.text) {
		if s.text[s.pos] == '\\' || s.text[s.pos] == '"' || s.isBreak(s.pos) {
			return
		}
		s.pos++
	}
}

// extendAcrossConcatenation extends the current word run across a
// string-literal concatenation idiom, so "Hel" + "lo" is one candidate.
// The caller strips the glue via ActualWord before lookup.
func (s *Scanner) extendAcrossConcatenation() {
	for {
		n := s.concatGlueLen(s.pos)
		if n == 0 {
			return
		}
		s.pos += n
		s.collectWord()
	}
}

// concatGlueLen returns the rune length of a concatenation bridge starting
// at a closing quote: quote, optional whitespace, '+' or '&' (or none when
// a verbatim prefix follows directly), optional whitespace, optional
// verbatim prefix characters, opening quote
func (s *Scanner) concatGlueLen(i int) int {
	if i >= len(s.text) || s.text[i] != '"' {
		return 0
	}
	j := i + 1
	for j < len(s.text) && unicode.IsSpace(s.text[j]) {
		j++
	}
	operator := false
	if j < len(s.text) && (s.text[j] == '+' || s.text[j] == '&') {
		operator = true
		j++
		for j < len(s.text) && unicode.IsSpace(s.text[j]) {
			j++
		}
	}
	prefix := 0
	for j < len(s.text) && (s.text[j] == '@' || s.text[j] == '$' || s.text[j] == 'R') {
		prefix++
		j++
	}
	if !operator && prefix == 0 {
		return 0
	}
	if j < len(s.text) && s.text[j] == '"' && j+1 < len(s.text) && !s.isBreak(j+1) {
		return j - i + 1
	}
	return 0
}

// caseSplit breaks a mixed-case word span into its sub-word candidates,
// dropping single-rune fragments
func (s *Scanner) caseSplit(sp Span) []Word {
	rs := s.text[sp.Start:sp.End]
	var words []Word
	for _, p := range caseRuns(rs) {
		if p[1]-p[0] > 1 {
			words = append(words, Word{Span: Span{Start: sp.Start + p[0], End: sp.Start + p[1]}})
		}
	}
	return words
}

// trimWord trims leading apostrophes and trailing apostrophes, periods,
// '@', and mnemonic characters from a word run
func (s *Scanner) trimWord(sp Span) Span {
	for sp.Start < sp.End {
		r := s.text[sp.Start]
		if r != '\'' && r != '’' {
			break
		}
		sp.Start++
	}
	mnemonic := s.cfg.mnemonic()
	for sp.End > sp.Start {
		r := s.text[sp.End-1]
		if r != '\'' && r != '’' && r != '.' && r != '@' && r != mnemonic {
			break
		}
		sp.End--
	}
	return sp
}

// whitespaceOnly reports whether the text between two offsets is entirely
// whitespace (and non-empty)
func (s *Scanner) whitespaceOnly(from, to int) bool {
	if from >= to {
		return false
	}
	for i := from; i < to; i++ {
		if !unicode.IsSpace(s.text[i]) {
			return false
		}
	}
	return true
}

// escapedIgnoredWordLen matches a configured "\word" greedily to the end
// of the letter run, returning its rune length or 0
func (s *Scanner) escapedIgnoredWordLen() int {
	if len(s.cfg.EscapedIgnoredWords) == 0 {
		return 0
	}
	i := s.pos + 1
	for i < len(s.text) && unicode.IsLetter(s.text[i]) {
		i++
	}
	if i == s.pos+1 {
		return 0
	}
	if s.cfg.EscapedIgnoredWords[string(s.text[s.pos+1:i])] {
		return i - s.pos
	}
	return 0
}

// noteQuote tracks whether the scan is inside a verbatim string literal
// (@", $@", @$", R"), in which escape interpretation is suppressed
func (s *Scanner) noteQuote(i int) {
	if s.inVerbatim {
		s.inVerbatim = false
		return
	}
	if i >= 1 {
		p := s.text[i-1]
		if p == '@' || p == 'R' {
			s.inVerbatim = true
			return
		}
		if p == '$' && i >= 2 && s.text[i-2] == '@' {
			s.inVerbatim = true
			return
		}
		if p == '@' && i >= 2 && s.text[i-2] == '$' {
			s.inVerbatim = true
			return
		}
	}
}

// isBreak reports whether the rune at the given offset breaks a word
func (s *Scanner) isBreak(i int) bool {
	r := s.text[i]

	// Apostrophes never break, so "don't" stays one word
	if r == '\'' || r == '’' {
		return false
	}

	// The mnemonic character is elided rather than breaking when mnemonics
	// are ignored
	if r == s.cfg.mnemonic() && s.cfg.IgnoreMnemonics {
		return false
	}

	switch r {
	case '_':
		return s.cfg.TreatUnderscoreAsSeparator
	case '.', '@':
		return !s.cfg.IgnoreFilenamesAndEmail
	}

	if unicode.IsDigit(r) {
		// A digit about to combine into a keycap emoji breaks instead
		if i+1 < len(s.text) {
			next := s.text[i+1]
			if next == 0xFE0F || next == 0x20E3 {
				return true
			}
		}
		return false
	}

	if isEmojiBlock(r) {
		return true
	}

	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsControl(r)
}

// isEmojiBlock covers the symbol blocks treated as breaks beyond the
// standard Unicode symbol categories
func isEmojiBlock(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2190 && r <= 0x2BFF:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0x20D0 && r <= 0x20FF:
		return true
	case r == 0x200D:
		return true
	}
	return false
}
