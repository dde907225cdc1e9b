package tools

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestGlobMatch tests the globmatch tool
func TestGlobMatch(ctx context.Context, c client.MCPClient) error {
	// Define test cases
	testCases := []struct {
		name      string
		arguments map[string]interface{}
	}{
		{
			name: "Match source files",
			arguments: map[string]interface{}{
				"pattern": "src/**/*.cs",
				"paths": []interface{}{
					"src/main.cs",
					"src/util/helpers.cs",
					"docs/readme.md",
				},
			},
		},
		{
			name: "Case-insensitive matching",
			arguments: map[string]interface{}{
				"pattern":          "*.CS",
				"paths":            []interface{}{"main.cs", "main.go"},
				"case_insensitive": true,
			},
		},
		{
			name: "Editorconfig-style suffix matching",
			arguments: map[string]interface{}{
				"pattern":               "*.cs",
				"paths":                 []interface{}{"/home/user/project/src/main.cs"},
				"editorconfig_matching": true,
			},
		},
		{
			name: "Match filename only",
			arguments: map[string]interface{}{
				"pattern":             "Makefile",
				"paths":               []interface{}{"src/deep/Makefile", "Makefile.bak"},
				"match_filename_only": true,
			},
		},
	}

	// Run test cases
	for _, tc := range testCases {
		log.Printf("Running globmatch test: %s", tc.name)

		callReq := mcp.CallToolRequest{}
		callReq.Params.Name = "globmatch"
		callReq.Params.Arguments = tc.arguments

		result, err := c.CallTool(ctx, callReq)
		if err != nil {
			log.Printf("Failed to call globmatch: %v", err)
			continue
		}

		if len(result.Content) > 0 {
			if textContent, ok := result.Content[0].(mcp.TextContent); ok {
				log.Printf("GlobMatch result:\n%s", textContent.Text)
			}
		}
	}

	return nil
}
