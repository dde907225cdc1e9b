package splitter

import (
	"strings"
	"unicode"
)

// IsProbablyARealWord reports whether a standalone candidate string looks
// like natural-language text worth a dictionary lookup. It applies the
// configured filters without running a full scan: filename/e-mail
// characters, underscores, digits, casing, and the ignored character
// class all disqualify a word before it ever reaches the dictionary.
func IsProbablyARealWord(word string, cfg Config) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	rs := []rune(word)
	mnemonic := cfg.mnemonic()

	letters := 0
	for _, r := range rs {
		// Filename and e-mail punctuation never appears in a real word
		if r == '.' || r == '@' {
			return false
		}
		if r == '_' && mnemonic != '_' {
			return false
		}
		if unicode.IsDigit(r) && cfg.IgnoreWordsWithDigits {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
		switch cfg.IgnoredCharacterClass {
		case IgnoreNonASCII:
			if r > 0x7F {
				return false
			}
		case IgnoreNonLatin:
			if r > 0x024F {
				return false
			}
		}
	}
	if letters == 0 {
		return false
	}

	if isAllUpper(rs) {
		return !cfg.IgnoreAllUppercaseWords
	}

	// Mixed-case (camel/Pascal) words are checked by their sub-words, not
	// as a whole, unless configured as a term to keep whole
	if hasInteriorUpper(rs) {
		return cfg.isKeptWholeTerm(word)
	}

	return true
}

func hasInteriorUpper(rs []rune) bool {
	for _, r := range rs[1:] {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
