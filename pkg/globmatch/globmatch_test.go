package globmatch

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callGlobMatch(t *testing.T, args map[string]interface{}) (string, error) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "globmatch"
	req.Params.Arguments = args

	result, err := HandleGlobMatch(context.Background(), req)
	if err != nil {
		return "", err
	}
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, nil
}

func TestHandleGlobMatch(t *testing.T) {
	out, err := callGlobMatch(t, map[string]interface{}{
		"pattern": "src/**/*.cs",
		"paths": []interface{}{
			"src/main.cs",
			"src/nested/deep/util.cs",
			"docs/readme.md",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "match     src/main.cs")
	assert.Contains(t, out, "match     src/nested/deep/util.cs")
	assert.Contains(t, out, "no match  docs/readme.md")
	assert.Contains(t, out, "2 of 3 paths matched")
}

func TestHandleGlobMatchModes(t *testing.T) {
	out, err := callGlobMatch(t, map[string]interface{}{
		"pattern":          "*.CS",
		"paths":            []interface{}{"main.cs"},
		"case_insensitive": true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 1 paths matched")

	out, err = callGlobMatch(t, map[string]interface{}{
		"pattern":               "*.cs",
		"paths":                 []interface{}{"deep/dir/main.cs"},
		"editorconfig_matching": true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 1 paths matched")
}

func TestHandleGlobMatchInvalidPattern(t *testing.T) {
	_, err := callGlobMatch(t, map[string]interface{}{
		"pattern": "src/[z-a].cs",
		"paths":   []interface{}{"src/a.cs"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestHandleGlobMatchRejectsBadArguments(t *testing.T) {
	_, err := callGlobMatch(t, map[string]interface{}{
		"paths": []interface{}{"a.cs"},
	})
	assert.Error(t, err)

	_, err = callGlobMatch(t, map[string]interface{}{
		"pattern": "*.cs",
	})
	assert.Error(t, err)
}
