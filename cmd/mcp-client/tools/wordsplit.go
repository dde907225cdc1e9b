package tools

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestWordSplit tests the wordsplit tool
func TestWordSplit(ctx context.Context, c client.MCPClient) error {
	// Define test cases
	testCases := []struct {
		name      string
		arguments map[string]interface{}
	}{
		{
			name: "Split identifiers and prose",
			arguments: map[string]interface{}{
				"text": "parse the MyHTTPServer name from getUserIDs",
			},
		},
		{
			name: "Detect doubled words",
			arguments: map[string]interface{}{
				"text":                 "we checked the the result",
				"detect_doubled_words": true,
			},
		},
		{
			name: "Keep underscores as word characters",
			arguments: map[string]interface{}{
				"text":                           "snake_case_name",
				"treat_underscore_as_separator": false,
			},
		},
		{
			name: "Handle escape sequences",
			arguments: map[string]interface{}{
				"text":                `first\nsecond\tthird`,
				"can_contain_escapes": true,
			},
		},
	}

	// Run test cases
	for _, tc := range testCases {
		log.Printf("Running wordsplit test: %s", tc.name)

		callReq := mcp.CallToolRequest{}
		callReq.Params.Name = "wordsplit"
		callReq.Params.Arguments = tc.arguments

		result, err := c.CallTool(ctx, callReq)
		if err != nil {
			log.Printf("Failed to call wordsplit: %v", err)
			continue
		}

		if len(result.Content) > 0 {
			if textContent, ok := result.Content[0].(mcp.TextContent); ok {
				log.Printf("WordSplit result:\n%s", textContent.Text)
			}
		}
	}

	return nil
}
