package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// ReadWorkspaceInfo reads the workspace info resource
func ReadWorkspaceInfo(ctx context.Context, c client.MCPClient) error {
	readReq := mcp.ReadResourceRequest{}
	readReq.Params.URI = "workspace://info"

	result, err := c.ReadResource(ctx, readReq)
	if err != nil {
		log.Printf("Failed to read workspace info: %v", err)
		return err
	}

	if len(result.Contents) > 0 {
		if textContent, ok := result.Contents[0].(mcp.TextResourceContents); ok {
			log.Printf("Workspace Info:\n%s", textContent.Text)
		}
	}

	return nil
}
