package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	workspaceSessionID = "client-session-1"
	workspaceRuleset   = "spellsieve.toml"
)

// TestWorkspace tests the workspace tool: a get before initialization must
// fail, an initialize binds a root directory and a ruleset to the session,
// and the get and resource reads afterwards report both back.
func TestWorkspace(ctx context.Context, c client.MCPClient) error {
	log.Printf("Running workspace test: get before initialization")
	if _, err := callWorkspace(ctx, c, map[string]interface{}{
		"operation":  "get",
		"session_id": "nonexistent-session",
	}); err != nil {
		log.Printf("Get before initialization failed as expected: %v", err)
	} else {
		log.Printf("Get before initialization succeeded unexpectedly")
	}

	log.Printf("Running workspace test: initialize with ruleset binding")
	initText, err := workspaceCallText(ctx, c, map[string]interface{}{
		"operation":    "initialize",
		"root_dir":     ".",
		"user_task":    "Spell check the workspace sources",
		"session_id":   workspaceSessionID,
		"ruleset_path": workspaceRuleset,
	})
	if err != nil {
		log.Printf("Workspace initialization failed: %v", err)
		return err
	}
	log.Printf("Workspace result:\n%s", initText)

	log.Printf("Running workspace test: get reports the bound ruleset")
	getText, err := workspaceCallText(ctx, c, map[string]interface{}{
		"operation":  "get",
		"session_id": workspaceSessionID,
	})
	if err != nil {
		log.Printf("Workspace get failed: %v", err)
		return err
	}
	log.Printf("Workspace result:\n%s", getText)
	if !strings.Contains(getText, workspaceRuleset) {
		return fmt.Errorf("workspace info does not mention the bound ruleset %q", workspaceRuleset)
	}

	log.Printf("Running workspace test: list sessions")
	listText, err := workspaceCallText(ctx, c, map[string]interface{}{
		"operation": "list",
	})
	if err != nil {
		log.Printf("Workspace list failed: %v", err)
		return err
	}
	log.Printf("Workspace result:\n%s", listText)

	log.Printf("Reading workspace resource for the session...")
	if err := testWorkspaceResource(ctx, c); err != nil {
		log.Printf("Failed to read workspace resource: %v", err)
		return err
	}

	return nil
}

// callWorkspace calls the workspace tool with the given arguments
func callWorkspace(ctx context.Context, c client.MCPClient, args map[string]interface{}) (*mcp.CallToolResult, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = "workspace"
	req.Params.Arguments = args

	return c.CallTool(ctx, req)
}

// workspaceCallText calls the workspace tool and returns the text of the result
func workspaceCallText(ctx context.Context, c client.MCPClient, args map[string]interface{}) (string, error) {
	result, err := callWorkspace(ctx, c, args)
	if err != nil {
		return "", err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			return textContent.Text, nil
		}
	}

	return "", nil
}

// testWorkspaceResource reads the session-specific workspace resource and
// checks the bound ruleset shows up there too
func testWorkspaceResource(ctx context.Context, c client.MCPClient) error {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "workspace://info/" + workspaceSessionID

	result, err := c.ReadResource(ctx, req)
	if err != nil {
		return err
	}

	if len(result.Contents) > 0 {
		if textContent, ok := result.Contents[0].(mcp.TextResourceContents); ok {
			log.Printf("Workspace Info:\n%s", textContent.Text)
			if !strings.Contains(textContent.Text, workspaceRuleset) {
				return fmt.Errorf("workspace resource does not mention the bound ruleset %q", workspaceRuleset)
			}
		}
	}

	return nil
}
