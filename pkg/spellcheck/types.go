package spellcheck

// SpellCheckResult represents a spelling issue found in the code
type SpellCheckResult struct {
	FilePath    string   `json:"file_path"`
	LineNumber  int      `json:"line_number"`
	ColumnStart int      `json:"column_start"`
	ColumnEnd   int      `json:"column_end"`
	Word        string   `json:"word"`
	Context     string   `json:"context"`
	Type        string   `json:"type"` // "comment", "string", "identifier", "doubled"
	Suggestions []string `json:"suggestions,omitempty"`

	// For doubled words: the column range whose deletion removes the
	// repeat and its separating whitespace
	DeleteStart int `json:"delete_start,omitempty"`
	DeleteEnd   int `json:"delete_end,omitempty"`
}

// Language represents a programming language with its file extensions and comment patterns
type Language struct {
	Name                  string
	FileExtensions        []string
	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string
	StringDelimiters      []string
	RawStringDelimiters   []string
	CStyleEscapes         bool
}
