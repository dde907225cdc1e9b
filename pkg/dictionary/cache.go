package dictionary

import "strings"

// SessionCache memoizes oracle answers for one checking session. Each
// caller owns its cache; independent sessions never share state, so a
// word ignored in one session stays flagged in another. Not safe for
// concurrent use.
type SessionCache struct {
	oracle  Oracle
	spelled map[string]bool
	ignored map[string]bool
}

// NewSessionCache wraps an oracle with per-session memoization
func NewSessionCache(oracle Oracle) *SessionCache {
	return &SessionCache{
		oracle:  oracle,
		spelled: make(map[string]bool),
		ignored: make(map[string]bool),
	}
}

// IgnoreWord marks a word ignored for the rest of this session only
func (c *SessionCache) IgnoreWord(word string) {
	c.ignored[strings.ToLower(word)] = true
}

// ShouldIgnore consults the session's ignore set before the oracle
func (c *SessionCache) ShouldIgnore(word string) bool {
	lower := strings.ToLower(word)
	if v, ok := c.ignored[lower]; ok {
		return v
	}
	v := c.oracle.ShouldIgnore(word)
	c.ignored[lower] = v
	return v
}

// IsSpelledCorrectly memoizes the oracle's spelling answer
func (c *SessionCache) IsSpelledCorrectly(word string) bool {
	lower := strings.ToLower(word)
	if v, ok := c.spelled[lower]; ok {
		return v
	}
	v := c.oracle.IsSpelledCorrectly(word)
	c.spelled[lower] = v
	return v
}
