package wordsplit

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callWordSplit(t *testing.T, args map[string]interface{}) string {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = "wordsplit"
	req.Params.Arguments = args

	result, err := HandleWordSplit(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleWordSplit(t *testing.T) {
	out := callWordSplit(t, map[string]interface{}{
		"text": "parse the MyHTTPServer name",
	})

	assert.Contains(t, out, "Split 6 words:")
	assert.Contains(t, out, `"parse"`)
	assert.Contains(t, out, `"My"`)
	assert.Contains(t, out, `"HTTP"`)
	assert.Contains(t, out, `"Server"`)
}

func TestHandleWordSplitDoubledAnnotation(t *testing.T) {
	out := callWordSplit(t, map[string]interface{}{
		"text": "the the cat",
	})

	assert.Contains(t, out, "doubled (delete [3:7))")
}

func TestHandleWordSplitOptions(t *testing.T) {
	out := callWordSplit(t, map[string]interface{}{
		"text":                          "snake_case_name",
		"treat_underscore_as_separator": true,
	})
	assert.Contains(t, out, "Split 3 words:")

	out = callWordSplit(t, map[string]interface{}{
		"text":                    "MyHTTPServer",
		"ignore_mixed_case_words": true,
	})
	assert.Contains(t, out, "Split 1 words:")
}

func TestHandleWordSplitRejectsMissingText(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Name = "wordsplit"
	req.Params.Arguments = map[string]interface{}{}

	_, err := HandleWordSplit(context.Background(), req)
	assert.Error(t, err)
}
