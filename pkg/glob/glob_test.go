package glob

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchBasics(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"exact literal", "Program.cs", "Program.cs", true},
		{"literal mismatch", "Program.cs", "Program.go", false},
		{"star extension", "*.cs", "Program.cs", true},
		{"star does not stop early", "*.cs", "Program.csx", false},
		{"star matches empty", "*.cs", ".cs", true},
		{"question mark", "?at.txt", "cat.txt", true},
		{"question mark needs a char", "?at.txt", "at.txt", false},
		{"star within segment", "src/*.go", "src/main.go", true},
		{"star does not cross separator", "src/*.go", "src/sub/main.go", false},
		{"double star spans segments", "**/bin/*", "src/bin/debug/app.dll", true},
		{"double star matches zero segments", "**/bin/*", "bin/app.dll", true},
		{"double star no bin", "**/bin/*", "src/obj/debug/app.dll", false},
		{"trailing double star", "src/**", "src/a/b/c.go", true},
		{"pattern names parent directory", "src", "src/main.go", true},
		{"parent directory mismatch", "src", "lib/main.go", false},
		{"backslash separated input", "src/*.go", `src\main.go`, true},
		{"consecutive stars collapse to double star", "***/obj", "a/b/obj", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Compile(tt.pattern, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.IsMatch(tt.path), "pattern %q vs %q", tt.pattern, tt.path)
		})
	}
}

func TestIsMatchCharacterSets(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"[a-c]at.txt", "bat.txt", true},
		{"[a-c]at.txt", "aat.txt", true},
		{"[a-c]at.txt", "cat.txt", true},
		{"[a-c]at.txt", "dat.txt", false},
		{"[!a-c]at.txt", "dat.txt", true},
		{"[!a-c]at.txt", "bat.txt", false},
		{"[-x]y", "-y", true},
		{"[-x]y", "xy", true},
		{"[]x]y", "]y", true},
		{"file[0-9][0-9].log", "file42.log", true},
		{"file[0-9][0-9].log", "file4x.log", false},
	}

	for _, tt := range tests {
		g, err := Compile(tt.pattern, Options{})
		require.NoError(t, err, "pattern %q", tt.pattern)
		assert.Equal(t, tt.want, g.IsMatch(tt.path), "pattern %q vs %q", tt.pattern, tt.path)
	}
}

func TestIsMatchLiteralSets(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.{js,ts}", "index.ts", true},
		{"*.{js,ts}", "index.js", true},
		{"*.{js,ts}", "index.go", false},
		{"{foo,bar}/main.go", "bar/main.go", true},
		{"{foo,bar}/main.go", "baz/main.go", false},
		// An alternative can be a prefix of another; both must be tried
		{"{a,ab}c", "abc", true},
		{"{a,ab}c", "ac", true},
	}

	for _, tt := range tests {
		g, err := Compile(tt.pattern, Options{})
		require.NoError(t, err, "pattern %q", tt.pattern)
		assert.Equal(t, tt.want, g.IsMatch(tt.path), "pattern %q vs %q", tt.pattern, tt.path)
	}
}

func TestIsMatchRoots(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		opts    Options
		want    bool
	}{
		{"/usr/*", "/usr/lib", Options{}, true},
		{"/usr/*", "usr/lib", Options{}, false},
		{"C:/temp/*.txt", "C:/temp/notes.txt", Options{}, true},
		{"C:/temp/*.txt", `C:\temp\notes.txt`, Options{}, true},
		{"c:/temp/*.txt", "C:/temp/notes.txt", Options{CaseInsensitive: true}, true},
		{"c:/temp/*.txt", "C:/temp/notes.txt", Options{}, false},
	}

	for _, tt := range tests {
		g, err := Compile(tt.pattern, tt.opts)
		require.NoError(t, err, "pattern %q", tt.pattern)
		assert.Equal(t, tt.want, g.IsMatch(tt.path), "pattern %q vs %q", tt.pattern, tt.path)
	}
}

func TestIsMatchCaseInsensitive(t *testing.T) {
	g := MustCompile("*.CS", Options{CaseInsensitive: true})
	assert.True(t, g.IsMatch("Program.cs"))

	g = MustCompile("[a-c]at.txt", Options{CaseInsensitive: true})
	assert.True(t, g.IsMatch("Bat.txt"))

	g = MustCompile("*.CS", Options{})
	assert.False(t, g.IsMatch("Program.cs"))
}

func TestIsMatchFilenameOnly(t *testing.T) {
	g := MustCompile("*.cs", Options{MatchFilenameOnly: true})
	assert.True(t, g.IsMatch("Root/Sub/Program.cs"))
	assert.False(t, g.IsMatch("Root/Sub/Program.go"))

	// Filename-only does not apply to multi-segment patterns
	g = MustCompile("Sub/*.cs", Options{MatchFilenameOnly: true})
	assert.False(t, g.IsMatch("Root/Sub/Program.cs"))
}

func TestIsMatchEditorConfig(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Single segment matches the filename anywhere
		{"*.cs", "Root/Sub/Program.cs", true},
		{"*.cs", "Root/Sub/Program.go", false},
		// Multi-segment literal-led patterns anchor at any suffix offset
		{"Folder/File.ext", "Root/Sub/Folder/File.ext", true},
		{"Folder/File.ext", "Folder/File.ext", true},
		{"Folder/File.ext", "Root/Folder/Other.ext", false},
		{"Folder/File.ext", "Folder/Deep/File.ext", false},
		// With a directory wildcard every offset is tried
		{"Folder/**/File.ext", "Root/Folder/A/B/File.ext", true},
		{"Folder/**/File.ext", "Root/Other/A/B/File.ext", false},
	}

	for _, tt := range tests {
		g, err := Compile(tt.pattern, Options{EditorConfigMatching: true})
		require.NoError(t, err, "pattern %q", tt.pattern)
		assert.Equal(t, tt.want, g.IsMatch(tt.path), "pattern %q vs %q", tt.pattern, tt.path)
	}
}

func TestIsMatchEscapes(t *testing.T) {
	g := MustCompile(`a\*b.txt`, Options{})
	assert.True(t, g.IsMatch("a*b.txt"))
	assert.False(t, g.IsMatch("axb.txt"))

	g = MustCompile(`version\{1\}.txt`, Options{})
	assert.True(t, g.IsMatch("version{1}.txt"))

	g = MustCompile(`{a\,b,c}.txt`, Options{})
	assert.True(t, g.IsMatch("a,b.txt"))
	assert.True(t, g.IsMatch("c.txt"))
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty pattern", ""},
		{"unterminated character set", "[abc"},
		{"unterminated literal set", "{a,b"},
		{"extended glob question", "?(x|y)"},
		{"extended glob star", "*(x)"},
		{"extended glob plus", "+(x)"},
		{"unexpected paren", "a(b"},
		{"unexpected close bracket", "ab]c"},
		{"trailing escape", `abc\`},
		{"reversed range", "[z-a]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern, Options{})
			require.Error(t, err)

			var perr *PatternError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.pattern, perr.Pattern)
			assert.GreaterOrEqual(t, perr.Pos, 0)
		})
	}
}

func TestLazyCompileIsConcurrencySafe(t *testing.T) {
	g := New("**/bin/*.{dll,exe}", Options{})

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.IsMatch("src/bin/app.dll")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.True(t, got, "goroutine %d", i)
	}
}

func TestInvalidPatternNeverMatches(t *testing.T) {
	g := New("[abc", Options{})
	assert.False(t, g.IsMatch("a"))
	assert.Error(t, g.Err())
}
