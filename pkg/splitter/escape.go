package splitter

import (
	"strings"
	"unicode"
)

// escapeLen returns the rune length of the C-style escape sequence starting
// at text[0] (which must be '\\'), or 0 if the text does not start with a
// valid escape. Hex and Unicode escapes consume their exact digit runs:
// \x takes 1-4 hex digits, \u exactly 4, \U exactly 8.
func escapeLen(text []rune) int {
	if len(text) < 2 || text[0] != '\\' {
		return 0
	}
	switch text[1] {
	case 'a', 'b', 'e', 'f', 'n', 'r', 't', 'v', '0', '\\', '"', '\'', '?':
		return 2
	case 'x':
		n := hexRun(text[2:], 4)
		if n == 0 {
			return 0
		}
		return 2 + n
	case 'u':
		if hexRun(text[2:], 4) == 4 {
			return 6
		}
		return 0
	case 'U':
		if hexRun(text[2:], 8) == 8 {
			return 10
		}
		return 0
	}
	return 0
}

// hexRun counts leading hex digits, up to max
func hexRun(text []rune, max int) int {
	n := 0
	for n < len(text) && n < max && isHexDigit(text[n]) {
		n++
	}
	return n
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// entityLen returns the rune length of the XML entity reference starting at
// text[0] (which must be '&'), or 0. Named references are letters then
// letters/digits; numeric references take at most 4 decimal or hex digits.
func entityLen(text []rune) int {
	if len(text) < 3 || text[0] != '&' {
		return 0
	}

	if text[1] == '#' {
		i := 2
		hex := false
		if i < len(text) && (text[i] == 'x' || text[i] == 'X') {
			hex = true
			i++
		}
		start := i
		for i < len(text) && i-start < 4 {
			r := text[i]
			if hex && !isHexDigit(r) {
				break
			}
			if !hex && !unicode.IsDigit(r) {
				break
			}
			i++
		}
		if i == start {
			return 0
		}
		if i < len(text) && text[i] == ';' {
			return i + 1
		}
		return 0
	}

	if !unicode.IsLetter(text[1]) {
		return 0
	}
	i := 2
	for i < len(text) && (unicode.IsLetter(text[i]) || unicode.IsDigit(text[i])) {
		i++
	}
	if i < len(text) && text[i] == ';' {
		return i + 1
	}
	return 0
}

// braceSpecLen returns the rune length of the "{...}" format item starting
// at text[0] (which must be '{'), or 0. Doubled braces are escapes: "{{"
// consumes as a literal pair, and "}}" inside an item does not close it.
// An unterminated item is not consumed at all.
func braceSpecLen(text []rune) int {
	if len(text) == 0 || text[0] != '{' {
		return 0
	}
	if len(text) >= 2 && text[1] == '{' {
		return 2
	}

	depth := 1
	i := 1
	for i < len(text) {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				i += 2
				continue
			}
			depth++
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				i += 2
				continue
			}
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return 0
}

// printfSpecLen returns the rune length of the C-style format specifier
// starting at text[0] (which must be '%'), or 0. The grammar is the
// standard printf one: %[flags][width][.precision][length]conversion, and
// the specifier is consumed only on a full valid match.
func printfSpecLen(text []rune) int {
	if len(text) < 2 || text[0] != '%' {
		return 0
	}
	if text[1] == '%' {
		return 2
	}

	i := 1

	// Flags
	for i < len(text) && strings.ContainsRune("-+ #0", text[i]) {
		i++
	}

	// Width: digits or '*'
	if i < len(text) && text[i] == '*' {
		i++
	} else {
		for i < len(text) && unicode.IsDigit(text[i]) {
			i++
		}
	}

	// Precision: '.' then digits or '*'
	if i < len(text) && text[i] == '.' {
		i++
		if i < len(text) && text[i] == '*' {
			i++
		} else {
			for i < len(text) && unicode.IsDigit(text[i]) {
				i++
			}
		}
	}

	// Length modifier: hh, ll, or a single h l L q j z t
	if i+1 < len(text) && (text[i] == 'h' || text[i] == 'l') && text[i+1] == text[i] {
		i += 2
	} else if i < len(text) && strings.ContainsRune("hlLqjzt", text[i]) {
		i++
	}

	// Conversion character
	if i < len(text) && strings.ContainsRune("diouxXeEfFgGaAcspn", text[i]) {
		return i + 1
	}
	return 0
}
