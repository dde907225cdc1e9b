package tools

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestStats tests the stats tool. It calls wordsplit first so the report
// has at least one tool usage in it.
func TestStats(ctx context.Context, c client.MCPClient) error {
	log.Printf("Running stats test")

	warmup := mcp.CallToolRequest{}
	warmup.Params.Name = "wordsplit"
	warmup.Params.Arguments = map[string]interface{}{
		"text": "warm up the usage counters",
	}
	if _, err := c.CallTool(ctx, warmup); err != nil {
		log.Printf("Warmup wordsplit call failed: %v", err)
	}

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "stats"
	callReq.Params.Arguments = map[string]interface{}{}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call stats: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Stats result:\n%s", textContent.Text)
		}
	}

	return nil
}
