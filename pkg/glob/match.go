package glob

import (
	"strings"
	"unicode"
)

// splitInput splits a candidate path on '/' and '\', pulling a root ("/" or
// a drive letter) out as its own first segment
func splitInput(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")

	var segs []string
	if strings.HasPrefix(path, "/") {
		segs = append(segs, "/")
		path = strings.TrimPrefix(path, "/")
	} else if len(path) >= 2 && path[1] == ':' && isASCIILetter(rune(path[0])) {
		segs = append(segs, path[:2])
		path = strings.TrimPrefix(path[2:], "/")
	}

	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// matchSegments evaluates the segment tree against the input segments with
// an explicit work stack instead of recursion. "**" pushes two states: skip
// the wildcard (consume zero segments) and consume one input segment and
// retry; each retry consumes exactly one segment, so the walk terminates.
// A fully consumed pattern matches even if input segments remain: the
// pattern then names a parent directory of the candidate.
func matchSegments(segs []segment, input []string, caseInsensitive bool) bool {
	type state struct {
		si, ii int
	}
	stack := []state{{0, 0}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.si == len(segs) {
			return true
		}

		switch seg := segs[s.si].(type) {
		case rootSegment:
			if s.ii == 0 && len(input) > 0 && equalLiteral(seg.name, input[0], caseInsensitive) {
				stack = append(stack, state{s.si + 1, s.ii + 1})
			}
		case dirWildcard:
			// Consume one input segment and retry (tried after zero-consume)
			if s.ii < len(input) {
				stack = append(stack, state{s.si, s.ii + 1})
			}
			// Consume zero segments (on top of the stack, so tried first)
			stack = append(stack, state{s.si + 1, s.ii})
		case dirSegment:
			if s.ii < len(input) && matchOneSegment(seg, input[s.ii], caseInsensitive) {
				stack = append(stack, state{s.si + 1, s.ii + 1})
			}
		}
	}
	return false
}

// matchOneSegment matches a directory segment's sub-segments against one
// input path segment, backtracking over '*' positions and literal-set
// alternatives via the same explicit-stack scheme.
func matchOneSegment(seg dirSegment, name string, caseInsensitive bool) bool {
	rs := []rune(name)

	type state struct {
		pi, ri int
	}
	stack := []state{{0, 0}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.pi == len(seg.subs) {
			if s.ri == len(rs) {
				return true
			}
			continue
		}

		switch sub := seg.subs[s.pi].(type) {
		case anyString:
			if s.ri < len(rs) {
				stack = append(stack, state{s.pi, s.ri + 1})
			}
			stack = append(stack, state{s.pi + 1, s.ri})
		case anyChar:
			if s.ri < len(rs) {
				stack = append(stack, state{s.pi + 1, s.ri + 1})
			}
		case charSet:
			if s.ri < len(rs) && charSetContains(sub, rs[s.ri], caseInsensitive) {
				stack = append(stack, state{s.pi + 1, s.ri + 1})
			}
		case literal:
			if n, ok := literalPrefixLen(rs[s.ri:], sub.text, caseInsensitive); ok {
				stack = append(stack, state{s.pi + 1, s.ri + n})
			}
		case literalSet:
			// Try every alternative; each match is a backtracking point
			for _, alt := range sub.alts {
				if n, ok := literalPrefixLen(rs[s.ri:], alt, caseInsensitive); ok {
					stack = append(stack, state{s.pi + 1, s.ri + n})
				}
			}
		}
	}
	return false
}

// literalPrefixLen reports whether text starts with the literal, returning
// the number of runes consumed
func literalPrefixLen(text []rune, lit string, caseInsensitive bool) (int, bool) {
	n := 0
	for _, lr := range lit {
		if n >= len(text) || !equalRune(text[n], lr, caseInsensitive) {
			return 0, false
		}
		n++
	}
	return n, true
}

func charSetContains(cs charSet, r rune, caseInsensitive bool) bool {
	found := false
	for _, c := range cs.chars {
		if equalRune(r, c, caseInsensitive) {
			found = true
			break
		}
	}
	if cs.negated {
		return !found
	}
	return found
}

func equalRune(a, b rune, caseInsensitive bool) bool {
	if a == b {
		return true
	}
	if caseInsensitive {
		return unicode.ToLower(a) == unicode.ToLower(b)
	}
	return false
}

func equalLiteral(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
