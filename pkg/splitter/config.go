package splitter

import "strings"

// CharacterClass restricts which characters a real word may contain
type CharacterClass int

const (
	// IgnoreNone places no character-class restriction on words
	IgnoreNone CharacterClass = iota
	// IgnoreNonASCII rejects words containing any character above U+007F
	IgnoreNonASCII
	// IgnoreNonLatin rejects words containing characters outside the
	// Latin blocks (above U+024F)
	IgnoreNonLatin
)

// Config is the flat set of options consumed read-only by a scan. The zero
// value is usable; DefaultConfig returns the documented defaults. A Config
// bound to a Scanner must not be mutated while the scan is in progress.
type Config struct {
	// IgnoreMnemonics elides the mnemonic character from words instead of
	// treating it as a word break
	IgnoreMnemonics bool

	// MnemonicChar is the accelerator-key marker, '&' or '_'. Zero means '&'.
	// With MnemonicChar '_' and IgnoreMnemonics off, '_' still breaks only
	// under TreatUnderscoreAsSeparator; the underscore rule takes precedence.
	MnemonicChar rune

	// IgnoreFilenamesAndEmail keeps '.' and '@' from breaking words, so
	// filenames and e-mail addresses survive as single (ignorable) tokens
	IgnoreFilenamesAndEmail bool

	// TreatUnderscoreAsSeparator makes '_' a word break character
	TreatUnderscoreAsSeparator bool

	// IgnoreMixedCaseWords suppresses case-run splitting of camelCase and
	// PascalCase words
	IgnoreMixedCaseWords bool

	// IgnoreAllUppercaseWords marks all-uppercase words as not real words,
	// and makes SplitIdentifier skip all-uppercase identifiers
	IgnoreAllUppercaseWords bool

	// IgnoreWordsWithDigits marks words containing digits as not real words
	IgnoreWordsWithDigits bool

	// IgnoreFormatSpecifiers skips "{...}" format items and C-style "%"
	// format specifiers as non-word content
	IgnoreFormatSpecifiers bool

	// DetectDoubledWords emits DoubledWord records for adjacent repeats
	DetectDoubledWords bool

	// SpanStringConcatenation extends a word span across a string-literal
	// concatenation idiom ("ab" + "cd"); Scanner.ActualWord strips the glue
	SpanStringConcatenation bool

	// CanContainEscapes enables escape-sequence recognition; sequences are
	// only consumed when IsCStyleCode is also set
	CanContainEscapes bool

	// IsCStyleCode marks the text as code with C-style escape semantics
	IsCStyleCode bool

	// IgnoredCharacterClass restricts the character repertoire of real words
	IgnoredCharacterClass CharacterClass

	// DeprecatedTerms maps camel-cased terms that should be kept whole to
	// their preferred replacements. Keys are matched case-insensitively.
	DeprecatedTerms map[string]string

	// CompoundTerms maps camel-cased compound terms that should be kept
	// whole to their preferred spellings. Keys are matched case-insensitively.
	CompoundTerms map[string]string

	// EscapedIgnoredWords lists words that, when preceded by a backslash
	// (Doxygen tags such as "brief"), are skipped whole regardless of the
	// escape settings. Entries are matched case-sensitively without the
	// backslash.
	EscapedIgnoredWords map[string]bool
}

// DefaultConfig returns the defaults used when a caller supplies no
// configuration: '&' mnemonics, filenames/e-mail addresses kept whole,
// format specifiers skipped, and doubled-word detection on.
func DefaultConfig() Config {
	return Config{
		MnemonicChar:            '&',
		IgnoreFilenamesAndEmail: true,
		IgnoreFormatSpecifiers:  true,
		DetectDoubledWords:      true,
	}
}

// mnemonic returns the configured mnemonic character, defaulting to '&'
func (c Config) mnemonic() rune {
	if c.MnemonicChar == 0 {
		return '&'
	}
	return c.MnemonicChar
}

// isKeptWholeTerm reports whether the word is a configured deprecated or
// compound term, which is spell-checked as a single unit
func (c Config) isKeptWholeTerm(word string) bool {
	if len(c.DeprecatedTerms) == 0 && len(c.CompoundTerms) == 0 {
		return false
	}
	lower := strings.ToLower(word)
	if _, ok := c.DeprecatedTerms[lower]; ok {
		return true
	}
	_, ok := c.CompoundTerms[lower]
	return ok
}
