// Package glob implements the glob pattern language used for file rules:
// '*', '**', '?', character sets, literal alternation, and an optional
// drive/root anchor. A pattern compiles once into a tree and is then
// matched many times, either strictly against full paths or in the
// suffix-anchored style of .editorconfig section headers.
package glob

import "sync"

// Options control how a Glob compares its pattern against candidate paths.
// They are fixed at construction.
type Options struct {
	// CaseInsensitive folds case in literal, character-set, and root
	// comparisons
	CaseInsensitive bool

	// MatchFilenameOnly matches a single-segment pattern against the
	// input's last path segment alone
	MatchFilenameOnly bool

	// EditorConfigMatching enables .editorconfig section-header semantics:
	// filename-only matching for single-segment patterns, and
	// suffix-anchored matching for multi-segment patterns that start with
	// a literal directory segment
	EditorConfigMatching bool
}

// Glob is a compiled pattern. It is immutable after compilation and safe
// for concurrent IsMatch calls from multiple goroutines.
type Glob struct {
	pattern string
	opts    Options

	once sync.Once
	segs []segment
	err  error
}

// New creates a Glob that compiles lazily on first use. If the pattern is
// invalid, IsMatch reports false and Err returns the compile error.
func New(pattern string, opts Options) *Glob {
	return &Glob{pattern: pattern, opts: opts}
}

// Compile parses the pattern eagerly and returns the compile error, if any
func Compile(pattern string, opts Options) (*Glob, error) {
	g := New(pattern, opts)
	if err := g.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustCompile is Compile for patterns known valid at build time
func MustCompile(pattern string, opts Options) *Glob {
	g, err := Compile(pattern, opts)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Glob) ensureCompiled() {
	g.once.Do(func() {
		g.segs, g.err = parse(g.pattern)
	})
}

// Err returns the pattern compile error, if any, compiling first if needed
func (g *Glob) Err() error {
	g.ensureCompiled()
	return g.err
}

// Pattern returns the original pattern string
func (g *Glob) Pattern() string {
	return g.pattern
}

func (g *Glob) String() string {
	return g.pattern
}

// IsMatch reports whether the candidate path matches the pattern. A path
// may use '/' or '\' separators. An invalid pattern never matches.
func (g *Glob) IsMatch(path string) bool {
	g.ensureCompiled()
	if g.err != nil || len(g.segs) == 0 {
		return false
	}

	input := splitInput(path)
	if len(input) == 0 {
		return false
	}

	// Filename-only: a single-segment pattern is matched against the last
	// input segment alone
	if (g.opts.MatchFilenameOnly || g.opts.EditorConfigMatching) && g.isSingleSegment() {
		return matchSegments(g.segs, input[len(input)-1:], g.opts.CaseInsensitive)
	}

	// EditorConfig suffix matching: a multi-segment pattern led by a
	// literal directory segment may match anywhere at the tail of the path
	if g.opts.EditorConfigMatching && len(g.segs) > 1 {
		if _, ok := g.segs[0].(dirSegment); ok {
			off := len(input) - len(g.segs)
			if !hasDirWildcard(g.segs) {
				// Without "**" only the exact tail alignment can succeed
				if off < 0 {
					return false
				}
				return matchSegments(g.segs, input[off:], g.opts.CaseInsensitive)
			}
			if off < 0 {
				off = 0
			}
			for ; off >= 0; off-- {
				if matchSegments(g.segs, input[off:], g.opts.CaseInsensitive) {
					return true
				}
			}
			return false
		}
	}

	return matchSegments(g.segs, input, g.opts.CaseInsensitive)
}

// isSingleSegment reports whether the pattern is one plain directory
// segment with no root anchor
func (g *Glob) isSingleSegment() bool {
	if len(g.segs) != 1 {
		return false
	}
	_, ok := g.segs[0].(dirSegment)
	return ok
}
