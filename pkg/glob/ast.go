package glob

// segment is one path-level element of a compiled pattern tree
type segment interface {
	isSegment()
}

// rootSegment anchors the pattern at a filesystem root: "/" or a drive
// letter such as "C:". It must equal the input's first segment exactly.
type rootSegment struct {
	name string
}

// dirWildcard is "**" and matches zero or more whole path segments. It is
// always a whole segment of its own, never fused with other sub-segments.
type dirWildcard struct{}

// dirSegment matches exactly one input path segment via its sub-segments
type dirSegment struct {
	subs []subSegment
}

func (rootSegment) isSegment() {}
func (dirWildcard) isSegment() {}
func (dirSegment) isSegment()  {}

// subSegment is one element within a directory segment
type subSegment interface {
	isSubSegment()
}

// literal is a run of ordinary characters (escape sequences already unescaped)
type literal struct {
	text string
}

// anyString is "*" and matches zero or more characters within one segment
type anyString struct{}

// anyChar is "?" and matches exactly one character
type anyChar struct{}

// charSet is "[...]" or "[!...]"; ranges are expanded to an explicit
// character list at parse time
type charSet struct {
	negated bool
	chars   []rune
}

// literalSet is "{a,b,c}" and matches any one of its alternatives
type literalSet struct {
	alts []string
}

func (literal) isSubSegment()    {}
func (anyString) isSubSegment()  {}
func (anyChar) isSubSegment()    {}
func (charSet) isSubSegment()    {}
func (literalSet) isSubSegment() {}

// hasDirWildcard reports whether any segment is a "**"
func hasDirWildcard(segs []segment) bool {
	for _, seg := range segs {
		if _, ok := seg.(dirWildcard); ok {
			return true
		}
	}
	return false
}
