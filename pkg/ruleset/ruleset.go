// Package ruleset resolves per-file checking configuration from a TOML
// rule file. A rule file has a [defaults] table and ordered [[rule]]
// tables; each rule carries a glob pattern matched editorconfig-style
// against a file's workspace-relative path, and options that override the
// defaults. Rules apply in file order, later matches winning.
package ruleset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Word-Monger/SpellSieve/pkg/glob"
	"github.com/Word-Monger/SpellSieve/pkg/splitter"
)

// RuleSet is a parsed rule file ready for resolution. Safe for concurrent
// use; resolution never mutates the set.
type RuleSet struct {
	defaults options
	rules    []rule
}

type rule struct {
	pattern string
	glob    *glob.Glob
	opts    options
}

// options carries the overridable splitter settings plus extra words.
// Pointer fields distinguish "not set" from an explicit false.
type options struct {
	IgnoreMnemonics            *bool    `toml:"ignore_mnemonics,omitempty"`
	MnemonicChar               *string  `toml:"mnemonic_char,omitempty"`
	IgnoreFilenamesAndEmail    *bool    `toml:"ignore_filenames_and_email,omitempty"`
	TreatUnderscoreAsSeparator *bool    `toml:"treat_underscore_as_separator,omitempty"`
	IgnoreMixedCaseWords       *bool    `toml:"ignore_mixed_case_words,omitempty"`
	IgnoreAllUppercaseWords    *bool    `toml:"ignore_all_uppercase_words,omitempty"`
	IgnoreWordsWithDigits      *bool    `toml:"ignore_words_with_digits,omitempty"`
	IgnoreFormatSpecifiers     *bool    `toml:"ignore_format_specifiers,omitempty"`
	DetectDoubledWords         *bool    `toml:"detect_doubled_words,omitempty"`
	SpanStringConcatenation    *bool    `toml:"span_string_concatenation,omitempty"`
	IgnoredCharacterClass      *string  `toml:"ignored_character_class,omitempty"`
	IgnoredWords               []string `toml:"ignored_words,omitempty"`
	Skip                       *bool    `toml:"skip,omitempty"`
}

type ruleFile struct {
	Defaults options `toml:"defaults"`
	Rules    []struct {
		Pattern string `toml:"pattern"`
		options
	} `toml:"rule"`
}

// Load reads and parses a rule file from disk
func Load(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rule file: %v", err)
	}
	rs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error in rule file %s: %v", path, err)
	}
	return rs, nil
}

// Parse parses rule file content. Unknown keys and invalid glob patterns
// are errors; a rule file that is silently wrong is worse than one that
// fails to load.
func Parse(data []byte) (*RuleSet, error) {
	var file ruleFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("error parsing rules: %v", err)
	}

	if _, err := characterClass(file.Defaults.IgnoredCharacterClass); err != nil {
		return nil, err
	}

	rs := &RuleSet{defaults: file.Defaults}
	for i, r := range file.Rules {
		if r.Pattern == "" {
			return nil, fmt.Errorf("rule %d has no pattern", i+1)
		}
		g, err := glob.Compile(r.Pattern, glob.Options{EditorConfigMatching: true})
		if err != nil {
			return nil, fmt.Errorf("rule %d: %v", i+1, err)
		}
		if _, err := characterClass(r.IgnoredCharacterClass); err != nil {
			return nil, fmt.Errorf("rule %d: %v", i+1, err)
		}
		rs.rules = append(rs.rules, rule{pattern: r.Pattern, glob: g, opts: r.options})
	}
	return rs, nil
}

// Resolve computes the splitter configuration and ignored-word list for
// one file, identified by its path relative to the workspace root. The
// defaults apply first, then every rule whose pattern matches, in file
// order.
func (rs *RuleSet) Resolve(relPath string) (splitter.Config, []string) {
	cfg := splitter.DefaultConfig()
	var ignored []string

	rs.defaults.apply(&cfg)
	ignored = append(ignored, rs.defaults.IgnoredWords...)

	for _, r := range rs.rules {
		if r.glob.IsMatch(relPath) {
			r.opts.apply(&cfg)
			ignored = append(ignored, r.opts.IgnoredWords...)
		}
	}
	return cfg, ignored
}

// Excluded reports whether a file is excluded from checking entirely. A
// rule with skip = true excludes its matching files; a later matching rule
// with skip = false re-includes them.
func (rs *RuleSet) Excluded(relPath string) bool {
	skip := false
	if rs.defaults.Skip != nil {
		skip = *rs.defaults.Skip
	}
	for _, r := range rs.rules {
		if r.opts.Skip != nil && r.glob.IsMatch(relPath) {
			skip = *r.opts.Skip
		}
	}
	return skip
}

// apply overlays the set options onto a configuration
func (o options) apply(cfg *splitter.Config) {
	if o.IgnoreMnemonics != nil {
		cfg.IgnoreMnemonics = *o.IgnoreMnemonics
	}
	if o.MnemonicChar != nil && *o.MnemonicChar != "" {
		cfg.MnemonicChar = []rune(*o.MnemonicChar)[0]
	}
	if o.IgnoreFilenamesAndEmail != nil {
		cfg.IgnoreFilenamesAndEmail = *o.IgnoreFilenamesAndEmail
	}
	if o.TreatUnderscoreAsSeparator != nil {
		cfg.TreatUnderscoreAsSeparator = *o.TreatUnderscoreAsSeparator
	}
	if o.IgnoreMixedCaseWords != nil {
		cfg.IgnoreMixedCaseWords = *o.IgnoreMixedCaseWords
	}
	if o.IgnoreAllUppercaseWords != nil {
		cfg.IgnoreAllUppercaseWords = *o.IgnoreAllUppercaseWords
	}
	if o.IgnoreWordsWithDigits != nil {
		cfg.IgnoreWordsWithDigits = *o.IgnoreWordsWithDigits
	}
	if o.IgnoreFormatSpecifiers != nil {
		cfg.IgnoreFormatSpecifiers = *o.IgnoreFormatSpecifiers
	}
	if o.DetectDoubledWords != nil {
		cfg.DetectDoubledWords = *o.DetectDoubledWords
	}
	if o.SpanStringConcatenation != nil {
		cfg.SpanStringConcatenation = *o.SpanStringConcatenation
	}
	if o.IgnoredCharacterClass != nil {
		// Validated at parse time
		cls, _ := characterClass(o.IgnoredCharacterClass)
		cfg.IgnoredCharacterClass = cls
	}
}

// characterClass maps the TOML value to its splitter constant
func characterClass(name *string) (splitter.CharacterClass, error) {
	if name == nil {
		return splitter.IgnoreNone, nil
	}
	switch *name {
	case "", "none":
		return splitter.IgnoreNone, nil
	case "non-ascii":
		return splitter.IgnoreNonASCII, nil
	case "non-latin":
		return splitter.IgnoreNonLatin, nil
	}
	return splitter.IgnoreNone, fmt.Errorf("unknown ignored_character_class %q", *name)
}
