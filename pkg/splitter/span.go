package splitter

// Span is an immutable half-open [Start, End) range of rune offsets into
// the scanned text. Spans never reference the text itself; the caller
// re-slices by offset (or uses Scanner.Text). Spans are only valid for the
// text they were produced from and must be recomputed after an edit.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// DoubledWord flags the second occurrence of two case-insensitively
// identical words separated only by whitespace. Word covers the repeated
// word itself; Delete additionally covers the separating whitespace, so
// deleting it leaves a single copy behind.
type DoubledWord struct {
	Word   Span
	Delete Span
	Text   string
}

// Word is one item produced by a scan: a candidate span for spell-check
// lookup, with Doubled set when the word repeats its predecessor.
type Word struct {
	Span    Span
	Doubled *DoubledWord
}
