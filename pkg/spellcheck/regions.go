package spellcheck

import "strings"

type regionKind int

const (
	regionComment regionKind = iota
	regionString
	regionCode
)

// region is one checkable stretch of a source line. The column is the rune
// offset of the region's text within the line.
type region struct {
	kind regionKind
	col  int
	text string
}

// regionScanner splits source lines into comment, string, and code regions.
// Block-comment state carries across lines, so a scanner is bound to one
// file and its lines must be fed in order.
type regionScanner struct {
	lang    Language
	inBlock bool
}

func newRegionScanner(lang Language) *regionScanner {
	return &regionScanner{lang: lang}
}

// scanLine splits one line into regions. String literals do not span lines;
// an unterminated literal runs to the end of its line.
func (s *regionScanner) scanLine(line string) []region {
	rs := []rune(line)
	var regions []region
	i := 0
	codeStart := 0

	flushCode := func(end int) {
		if end > codeStart {
			regions = append(regions, region{regionCode, codeStart, string(rs[codeStart:end])})
		}
	}

	// Finish an open block comment first
	if s.inBlock {
		end := indexRunes(rs, 0, s.lang.MultiLineCommentEnd)
		if end < 0 {
			return []region{{regionComment, 0, line}}
		}
		regions = append(regions, region{regionComment, 0, string(rs[:end])})
		i = end + runeLen(s.lang.MultiLineCommentEnd)
		codeStart = i
		s.inBlock = false
	}

	for i < len(rs) {
		if m := s.lang.SingleLineComment; m != "" && hasRunePrefix(rs[i:], m) {
			flushCode(i)
			start := i + runeLen(m)
			regions = append(regions, region{regionComment, start, string(rs[start:])})
			return regions
		}

		if m := s.lang.MultiLineCommentStart; m != "" && hasRunePrefix(rs[i:], m) {
			flushCode(i)
			start := i + runeLen(m)
			end := indexRunes(rs, start, s.lang.MultiLineCommentEnd)
			if end < 0 {
				s.inBlock = true
				regions = append(regions, region{regionComment, start, string(rs[start:])})
				return regions
			}
			regions = append(regions, region{regionComment, start, string(rs[start:end])})
			i = end + runeLen(s.lang.MultiLineCommentEnd)
			codeStart = i
			continue
		}

		if delim, raw := s.stringStart(rs[i:]); delim != "" {
			flushCode(i)
			start := i + runeLen(delim)
			closing := closingDelimiter(delim)
			end := s.findStringEnd(rs, start, closing, raw)
			if end < 0 {
				regions = append(regions, region{regionString, start, string(rs[start:])})
				return regions
			}
			regions = append(regions, region{regionString, start, string(rs[start:end])})
			i = end + runeLen(closing)
			codeStart = i
			continue
		}

		i++
	}

	flushCode(len(rs))
	return regions
}

// stringStart reports which string delimiter opens at this position. Raw
// delimiters are checked first; they are longer and escape-free.
func (s *regionScanner) stringStart(rs []rune) (string, bool) {
	for _, d := range s.lang.RawStringDelimiters {
		if hasRunePrefix(rs, d) {
			return d, true
		}
	}
	for _, d := range s.lang.StringDelimiters {
		if hasRunePrefix(rs, d) {
			return d, false
		}
	}
	return "", false
}

// findStringEnd locates the closing delimiter, honoring backslash escapes
// in non-raw literals
func (s *regionScanner) findStringEnd(rs []rune, from int, closing string, raw bool) int {
	i := from
	for i < len(rs) {
		if !raw && s.lang.CStyleEscapes && rs[i] == '\\' && i+1 < len(rs) {
			i += 2
			continue
		}
		if hasRunePrefix(rs[i:], closing) {
			return i
		}
		i++
	}
	return -1
}

// closingDelimiter maps an opening string delimiter to its closer: verbatim
// prefixes (@", R") close with a plain quote
func closingDelimiter(delim string) string {
	if strings.HasSuffix(delim, "\"") && len(delim) > 1 {
		return "\""
	}
	return delim
}

func runeLen(s string) int {
	return len([]rune(s))
}

// hasRunePrefix reports whether the rune slice starts with the marker
func hasRunePrefix(rs []rune, marker string) bool {
	m := []rune(marker)
	if len(rs) < len(m) {
		return false
	}
	for i, r := range m {
		if rs[i] != r {
			return false
		}
	}
	return true
}

// indexRunes finds the marker in the rune slice at or after from, returning
// its rune offset or -1
func indexRunes(rs []rune, from int, marker string) int {
	m := []rune(marker)
	if len(m) == 0 {
		return -1
	}
	for i := from; i+len(m) <= len(rs); i++ {
		if hasRunePrefix(rs[i:], marker) {
			return i
		}
	}
	return -1
}
