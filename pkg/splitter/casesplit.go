package splitter

import "unicode"

// needsCaseSplit reports whether a word is a candidate for case-run
// splitting: it starts with a letter, has an uppercase letter past the
// first position, and is not entirely uppercase
func needsCaseSplit(rs []rune) bool {
	if len(rs) == 0 || !unicode.IsLetter(rs[0]) {
		return false
	}
	interiorUpper := false
	for _, r := range rs[1:] {
		if unicode.IsUpper(r) {
			interiorUpper = true
			break
		}
	}
	if !interiorUpper {
		return false
	}
	return !isAllUpper(rs)
}

// isAllUpper reports whether every letter in the word is uppercase and the
// word contains at least one letter
func isAllUpper(rs []rune) bool {
	letters := 0
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > 0
}

// containsSpecialBreakChar reports whether the word contains one of the
// characters that exempt it from case splitting. This check is independent
// of the break-character configuration: an underscore exempts a word even
// when underscores are not configured as separators.
func containsSpecialBreakChar(rs []rune) bool {
	for _, r := range rs {
		if r == '_' || r == '.' || r == '@' {
			return true
		}
	}
	return false
}

// caseRuns splits a word into sub-word ranges on uppercase-letter run
// boundaries. A run of consecutive uppercase letters is one unit (an
// acronym); when lowercase follows a run, the run's last letter starts the
// next sub-word ("HTTPServer" -> "HTTP", "Server") unless the lowercase
// tail is a lone 's', which stays attached ("IDs" is one unit). A fully
// uppercase word comes back as a single range.
func caseRuns(rs []rune) [][2]int {
	var parts [][2]int
	n := len(rs)
	i := 0

	for i < n {
		start := i
		if unicode.IsUpper(rs[i]) {
			for i < n && unicode.IsUpper(rs[i]) {
				i++
			}
			if i < n && !unicode.IsUpper(rs[i]) {
				runLen := i - start
				end := i
				for end < n && !unicode.IsUpper(rs[end]) {
					end++
				}
				switch {
				case runLen >= 2 && end-i == 1 && rs[i] == 's':
					// Trailing "Xs" plural: keep with the acronym
					i = end
				case runLen >= 2:
					// The run's last letter begins the next sub-word
					i--
				default:
					// Single uppercase letter plus its lowercase tail
					i = end
				}
			}
		} else {
			for i < n && !unicode.IsUpper(rs[i]) {
				i++
			}
		}
		parts = append(parts, [2]int{start, i})
	}

	return parts
}

// SplitIdentifier splits a source-code identifier into spell-checkable
// sub-word spans. Only letter runs are considered; digits and punctuation
// are hard breaks. Each letter run is then case-split the same way word
// splitting does it. With IgnoreAllUppercaseWords set, an identifier whose
// letters are all uppercase yields nothing. Sub-words of a single rune are
// dropped.
func SplitIdentifier(identifier string, cfg Config) []Span {
	rs := []rune(identifier)

	if cfg.IgnoreAllUppercaseWords && isAllUpper(rs) {
		return nil
	}

	var spans []Span
	i := 0
	for i < len(rs) {
		if !unicode.IsLetter(rs[i]) {
			i++
			continue
		}
		start := i
		for i < len(rs) && unicode.IsLetter(rs[i]) {
			i++
		}
		for _, p := range caseRuns(rs[start:i]) {
			if p[1]-p[0] > 1 {
				spans = append(spans, Span{Start: start + p[0], End: start + p[1]})
			}
		}
	}
	return spans
}
