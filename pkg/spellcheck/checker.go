// Package spellcheck scans source files for misspelled words in comments,
// string literals, and identifiers. Files are split into regions by
// language-aware delimiters, each region is broken into word candidates by
// the splitter, and the candidates are classified through a dictionary
// oracle with per-session caching. Doubled words in prose regions are
// reported with the column range whose deletion fixes them.
package spellcheck

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Word-Monger/SpellSieve/pkg/dictionary"
	"github.com/Word-Monger/SpellSieve/pkg/ruleset"
	"github.com/Word-Monger/SpellSieve/pkg/splitter"
)

// CheckOptions selects what a checking run looks at
type CheckOptions struct {
	CheckComments    bool
	CheckStrings     bool
	CheckIdentifiers bool
	Language         string
	Recursive        bool
	MaxSuggestions   int
}

// DefaultCheckOptions checks everything, recursively, with five suggestions
func DefaultCheckOptions() CheckOptions {
	return CheckOptions{
		CheckComments:    true,
		CheckStrings:     true,
		CheckIdentifiers: true,
		Recursive:        true,
		MaxSuggestions:   5,
	}
}

// doxygenWords are documentation tags skipped when preceded by a backslash
// in comment text
var doxygenWords = map[string]bool{
	"brief": true, "param": true, "tparam": true, "return": true,
	"returns": true, "retval": true, "throws": true, "throw": true,
	"see": true, "sa": true, "note": true, "warning": true, "code": true,
	"endcode": true, "ref": true, "file": true, "author": true,
	"version": true, "since": true, "deprecated": true, "details": true,
}

// Checker runs spell checking over files under one workspace root. Each
// Checker owns its session cache; concurrent checks should use separate
// Checkers.
type Checker struct {
	dict    *dictionary.Dictionary
	cache   *dictionary.SessionCache
	rules   *ruleset.RuleSet
	rootDir string
	opts    CheckOptions
}

// NewChecker creates a Checker. The rule set may be nil, in which case
// every file is checked under the default configuration.
func NewChecker(dict *dictionary.Dictionary, rules *ruleset.RuleSet, rootDir string, opts CheckOptions) *Checker {
	return &Checker{
		dict:    dict,
		cache:   dictionary.NewSessionCache(dict),
		rules:   rules,
		rootDir: rootDir,
		opts:    opts,
	}
}

// CheckPath checks a file or a directory tree
func (c *Checker) CheckPath(path string) ([]SpellCheckResult, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path: %v", err)
	}
	if fileInfo.IsDir() {
		return c.checkDirectory(path)
	}

	lang, err := c.languageFor(path)
	if err != nil {
		return nil, err
	}
	return c.checkFile(path, lang)
}

// checkDirectory walks a directory and checks every supported file
func (c *Checker) checkDirectory(dirPath string) ([]SpellCheckResult, error) {
	// Build the extension table, filtered when a language was requested
	var languages []Language
	if c.opts.Language != "" {
		lang, found := GetLanguageByName(c.opts.Language)
		if !found {
			return nil, fmt.Errorf("unsupported language: %s", c.opts.Language)
		}
		languages = []Language{lang}
	} else {
		languages = GetSupportedLanguages()
	}

	extToLang := make(map[string]Language)
	for _, lang := range languages {
		for _, ext := range lang.FileExtensions {
			extToLang[ext] = lang
		}
	}

	var results []SpellCheckResult
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip directories if not recursive
		if info.IsDir() {
			if path != dirPath && !c.opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		lang, ok := extToLang[filepath.Ext(path)]
		if !ok {
			return nil
		}

		fileResults, err := c.checkFile(path, lang)
		if err != nil {
			log.Printf("[SpellCheck] Error checking file %s: %v", path, err)
			return nil
		}
		results = append(results, fileResults...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %v", err)
	}

	return results, nil
}

// languageFor resolves the language for a single file from the requested
// language or the file extension
func (c *Checker) languageFor(filePath string) (Language, error) {
	if c.opts.Language != "" {
		lang, found := GetLanguageByName(c.opts.Language)
		if !found {
			return Language{}, fmt.Errorf("unsupported language: %s", c.opts.Language)
		}
		return lang, nil
	}
	ext := filepath.Ext(filePath)
	lang, found := GetLanguageByExtension(ext)
	if !found {
		return Language{}, fmt.Errorf("unsupported file extension: %s", ext)
	}
	return lang, nil
}

// checkFile checks one file under its resolved configuration
func (c *Checker) checkFile(filePath string, lang Language) ([]SpellCheckResult, error) {
	if c.rules != nil && c.rules.Excluded(c.relPath(filePath)) {
		return nil, nil
	}
	cfg, fileIgnored := c.resolveConfig(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()

	// Region-specific configurations
	commentCfg := cfg
	commentCfg.EscapedIgnoredWords = doxygenWords
	stringCfg := cfg
	stringCfg.CanContainEscapes = true
	stringCfg.IsCStyleCode = lang.CStyleEscapes

	var results []SpellCheckResult
	regions := newRegionScanner(lang)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		for _, reg := range regions.scanLine(line) {
			switch reg.kind {
			case regionComment:
				if c.opts.CheckComments {
					results = append(results, c.checkProse(reg, commentCfg, fileIgnored, filePath, lineNumber, line, "comment")...)
				}
			case regionString:
				if c.opts.CheckStrings {
					results = append(results, c.checkProse(reg, stringCfg, fileIgnored, filePath, lineNumber, line, "string")...)
				}
			case regionCode:
				if c.opts.CheckIdentifiers {
					results = append(results, c.checkIdentifiers(reg, cfg, fileIgnored, filePath, lineNumber, line)...)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %v", err)
	}

	return results, nil
}

// relPath converts a file path to its workspace-relative slash form for
// rule matching
func (c *Checker) relPath(filePath string) string {
	rel, err := filepath.Rel(c.rootDir, filePath)
	if err != nil {
		rel = filePath
	}
	return filepath.ToSlash(rel)
}

// resolveConfig computes the splitter configuration and per-file ignored
// words from the rule set
func (c *Checker) resolveConfig(filePath string) (splitter.Config, map[string]bool) {
	cfg := splitter.DefaultConfig()
	ignored := make(map[string]bool)

	if c.rules != nil {
		var words []string
		cfg, words = c.rules.Resolve(c.relPath(filePath))
		for _, w := range words {
			ignored[strings.ToLower(w)] = true
		}
	}
	return cfg, ignored
}

// checkProse runs the splitter over a comment or string region and
// classifies each candidate word
func (c *Checker) checkProse(reg region, cfg splitter.Config, fileIgnored map[string]bool, filePath string, lineNumber int, line, kind string) []SpellCheckResult {
	var results []SpellCheckResult

	s := splitter.Split(reg.text, cfg)
	for s.Scan() {
		w := s.Word()

		if w.Doubled != nil {
			results = append(results, SpellCheckResult{
				FilePath:    filePath,
				LineNumber:  lineNumber,
				ColumnStart: reg.col + w.Span.Start,
				ColumnEnd:   reg.col + w.Span.End,
				Word:        w.Doubled.Text,
				Context:     line,
				Type:        "doubled",
				DeleteStart: reg.col + w.Doubled.Delete.Start,
				DeleteEnd:   reg.col + w.Doubled.Delete.End,
			})
			continue
		}

		word := s.ActualWord()
		if !c.flagWord(word, cfg, fileIgnored) {
			continue
		}
		results = append(results, SpellCheckResult{
			FilePath:    filePath,
			LineNumber:  lineNumber,
			ColumnStart: reg.col + w.Span.Start,
			ColumnEnd:   reg.col + w.Span.End,
			Word:        word,
			Context:     line,
			Type:        kind,
			Suggestions: c.dict.Suggest(word, c.opts.MaxSuggestions),
		})
	}

	return results
}

// checkIdentifiers tokenizes a code region and checks identifier sub-words
func (c *Checker) checkIdentifiers(reg region, cfg splitter.Config, fileIgnored map[string]bool, filePath string, lineNumber int, line string) []SpellCheckResult {
	var results []SpellCheckResult

	rs := []rune(reg.text)
	i := 0
	for i < len(rs) {
		if !unicode.IsLetter(rs[i]) && rs[i] != '_' {
			i++
			continue
		}
		start := i
		for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
			i++
		}
		identifier := string(rs[start:i])

		for _, sp := range splitter.SplitIdentifier(identifier, cfg) {
			word := string(rs[start+sp.Start : start+sp.End])
			if !c.flagWord(word, cfg, fileIgnored) {
				continue
			}
			results = append(results, SpellCheckResult{
				FilePath:    filePath,
				LineNumber:  lineNumber,
				ColumnStart: reg.col + start + sp.Start,
				ColumnEnd:   reg.col + start + sp.End,
				Word:        word,
				Context:     line,
				Type:        "identifier",
				Suggestions: c.dict.Suggest(word, c.opts.MaxSuggestions),
			})
		}
	}

	return results
}

// flagWord reports whether a candidate word should be reported as
// misspelled
func (c *Checker) flagWord(word string, cfg splitter.Config, fileIgnored map[string]bool) bool {
	if !splitter.IsProbablyARealWord(word, cfg) {
		return false
	}
	if fileIgnored[strings.ToLower(word)] {
		return false
	}
	if c.cache.ShouldIgnore(word) {
		return false
	}
	return !c.cache.IsSpelledCorrectly(word)
}
