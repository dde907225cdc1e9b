package glob

import (
	"fmt"
	"strings"
	"unicode"
)

// PatternError reports a glob pattern syntax error and the offset of the
// offending character
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("glob pattern %q: %s at offset %d", e.Pattern, e.Msg, e.Pos)
}

// parser walks a pattern string once, left to right
type parser struct {
	pattern string
	runes   []rune
	pos     int
}

func (p *parser) errorf(pos int, format string, args ...interface{}) error {
	return &PatternError{Pattern: p.pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// parse compiles a pattern string into its segment tree
func parse(pattern string) ([]segment, error) {
	p := &parser{pattern: pattern, runes: []rune(pattern)}
	var segs []segment

	if len(p.runes) == 0 {
		return nil, p.errorf(0, "empty pattern")
	}

	// Root: a leading "/" or a drive letter followed by ":"
	if p.runes[0] == '/' {
		segs = append(segs, rootSegment{name: "/"})
		p.pos++
	} else if len(p.runes) >= 2 && unicode.IsLetter(p.runes[0]) && p.runes[1] == ':' {
		segs = append(segs, rootSegment{name: string(p.runes[0]) + ":"})
		p.pos += 2
		if p.pos < len(p.runes) && p.runes[p.pos] == '/' {
			p.pos++
		}
	}

	// Parse each '/'-separated segment
	for p.pos < len(p.runes) {
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		if seg != nil {
			// Consecutive "**" segments collapse into one
			if _, ok := seg.(dirWildcard); ok && len(segs) > 0 {
				if _, prev := segs[len(segs)-1].(dirWildcard); prev {
					seg = nil
				}
			}
			if seg != nil {
				segs = append(segs, seg)
			}
		}
		if p.pos < len(p.runes) && p.runes[p.pos] == '/' {
			p.pos++
		}
	}

	if len(segs) == 0 {
		return nil, p.errorf(0, "pattern has no segments")
	}

	return segs, nil
}

// parseSegment parses one directory segment, up to the next '/' or the end.
// A segment consisting solely of two or more '*' is a directory wildcard;
// consecutive '*' within a mixed segment collapse into a single '*'.
func (p *parser) parseSegment() (segment, error) {
	var subs []subSegment
	starCount := 0
	nonStar := false

	for p.pos < len(p.runes) && p.runes[p.pos] != '/' {
		r := p.runes[p.pos]
		switch r {
		case '*':
			if p.peek(1) == '(' {
				return nil, p.errorf(p.pos, "extended glob syntax \"*(\" is not supported")
			}
			starCount++
			// Collapse a run of '*' into a single wildcard
			if len(subs) == 0 || !isAnyString(subs[len(subs)-1]) {
				subs = append(subs, anyString{})
			}
			p.pos++

		case '?':
			if p.peek(1) == '(' {
				return nil, p.errorf(p.pos, "extended glob syntax \"?(\" is not supported")
			}
			nonStar = true
			subs = append(subs, anyChar{})
			p.pos++

		case '[':
			nonStar = true
			cs, err := p.parseCharSet()
			if err != nil {
				return nil, err
			}
			subs = append(subs, cs)

		case '{':
			nonStar = true
			ls, err := p.parseLiteralSet()
			if err != nil {
				return nil, err
			}
			subs = append(subs, ls)

		case ']', '}', '(', ')':
			return nil, p.errorf(p.pos, "unexpected %q", string(r))

		default:
			if (r == '+' || r == '@' || r == '!') && p.peek(1) == '(' {
				return nil, p.errorf(p.pos, "extended glob syntax %q is not supported", string(r)+"(")
			}
			nonStar = true
			lit, err := p.parseLiteral()
			if err != nil {
				return nil, err
			}
			subs = append(subs, lit)
		}
	}

	if len(subs) == 0 {
		return nil, nil
	}

	// A segment of nothing but '*' runs of length >= 2 is "**"
	if !nonStar && starCount >= 2 {
		return dirWildcard{}, nil
	}

	return dirSegment{subs: subs}, nil
}

// peek returns the rune at the given offset from the cursor, or zero
func (p *parser) peek(offset int) rune {
	if p.pos+offset >= len(p.runes) {
		return 0
	}
	return p.runes[p.pos+offset]
}

// parseLiteral consumes a run of ordinary characters, unescaping backslash
// escapes as it goes
func (p *parser) parseLiteral() (literal, error) {
	var sb strings.Builder

	for p.pos < len(p.runes) {
		r := p.runes[p.pos]
		switch r {
		case '/', '*', '?', '[', '{', ']', '}', '(', ')':
			return literal{text: sb.String()}, nil
		case '\\':
			if p.pos+1 >= len(p.runes) {
				return literal{}, p.errorf(p.pos, "trailing escape character")
			}
			p.pos++
			sb.WriteRune(p.runes[p.pos])
			p.pos++
		default:
			sb.WriteRune(r)
			p.pos++
		}
	}

	return literal{text: sb.String()}, nil
}

// parseCharSet parses "[...]" or "[!...]". Ranges such as "a-z" expand to an
// explicit character list; a leading '-', '[' or ']' is literal, as is a '-'
// just before the closing ']'.
func (p *parser) parseCharSet() (charSet, error) {
	open := p.pos
	p.pos++ // consume '['

	cs := charSet{}
	if p.pos < len(p.runes) && p.runes[p.pos] == '!' {
		cs.negated = true
		p.pos++
	}

	first := true
	for {
		if p.pos >= len(p.runes) {
			return cs, p.errorf(open, "unterminated character set")
		}
		r := p.runes[p.pos]

		if r == ']' && !first {
			p.pos++
			return cs, nil
		}

		// A '-' between two characters is a range; expand it now
		if r == '-' && !first && p.pos+1 < len(p.runes) && p.runes[p.pos+1] != ']' {
			lo := cs.chars[len(cs.chars)-1]
			hi := p.runes[p.pos+1]
			if hi < lo {
				return cs, p.errorf(p.pos, "invalid character range %q", string(lo)+"-"+string(hi))
			}
			for c := lo + 1; c <= hi; c++ {
				cs.chars = append(cs.chars, c)
			}
			p.pos += 2
			first = false
			continue
		}

		if r == '\\' && p.pos+1 < len(p.runes) {
			p.pos++
			r = p.runes[p.pos]
		}
		cs.chars = append(cs.chars, r)
		p.pos++
		first = false
	}
}

// parseLiteralSet parses "{a,b,c}". A comma can appear in an alternative if
// escaped with a backslash.
func (p *parser) parseLiteralSet() (literalSet, error) {
	open := p.pos
	p.pos++ // consume '{'

	ls := literalSet{}
	var cur strings.Builder

	for {
		if p.pos >= len(p.runes) {
			return ls, p.errorf(open, "unterminated literal set")
		}
		r := p.runes[p.pos]

		switch r {
		case '}':
			ls.alts = append(ls.alts, cur.String())
			p.pos++
			return ls, nil
		case ',':
			ls.alts = append(ls.alts, cur.String())
			cur.Reset()
			p.pos++
		case '/':
			return ls, p.errorf(p.pos, "unexpected %q in literal set", "/")
		case '\\':
			if p.pos+1 >= len(p.runes) {
				return ls, p.errorf(p.pos, "trailing escape character")
			}
			p.pos++
			cur.WriteRune(p.runes[p.pos])
			p.pos++
		default:
			cur.WriteRune(r)
			p.pos++
		}
	}
}

func isAnyString(sub subSegment) bool {
	_, ok := sub.(anyString)
	return ok
}
