// Package globmatch exposes the glob engine as an MCP tool for testing
// patterns against candidate paths.
package globmatch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Word-Monger/SpellSieve/pkg/glob"
	"github.com/Word-Monger/SpellSieve/pkg/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleGlobMatch is the handler function for the globmatch tool
func HandleGlobMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract the pattern
	pattern, ok := arguments["pattern"].(string)
	if !ok {
		return nil, fmt.Errorf("pattern must be a string")
	}

	// Extract the candidate paths
	pathsVal, ok := arguments["paths"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("paths must be an array of strings")
	}
	var paths []string
	for _, p := range pathsVal {
		if pathStr, ok := p.(string); ok {
			paths = append(paths, pathStr)
		}
	}

	// Extract the mode flags
	opts := glob.Options{}
	if v, ok := arguments["case_insensitive"].(bool); ok {
		opts.CaseInsensitive = v
	}
	if v, ok := arguments["match_filename_only"].(bool); ok {
		opts.MatchFilenameOnly = v
	}
	if v, ok := arguments["editorconfig_matching"].(bool); ok {
		opts.EditorConfigMatching = v
	}

	// Compile the pattern; report the error with its position
	g, err := glob.Compile(pattern, opts)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %v", err)
	}

	// Match each path
	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Pattern: %s\n\n", pattern))
	matches := 0
	for _, path := range paths {
		if g.IsMatch(path) {
			matches++
			summary.WriteString(fmt.Sprintf("match     %s\n", path))
		} else {
			summary.WriteString(fmt.Sprintf("no match  %s\n", path))
		}
	}
	summary.WriteString(fmt.Sprintf("\n%d of %d paths matched\n", matches, len(paths)))

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: summary.String(),
			},
		},
	}, nil
}

// RegisterGlobMatch registers the globmatch tool with the MCP server
func RegisterGlobMatch(mcpServer *server.MCPServer) {
	// Create the tool definition
	globMatchTool := mcp.NewTool("globmatch",
		mcp.WithDescription("Tests a glob pattern against candidate file paths. Supports *, **, ?, [character sets], {literal,sets}, backslash escapes, case-insensitive matching, filename-only matching, and editorconfig-style suffix matching."),
		mcp.WithString("pattern",
			mcp.Description("The glob pattern to test"),
			mcp.Required(),
		),
		mcp.WithArray("paths",
			mcp.Description("The candidate file paths to match against the pattern"),
			mcp.Required(),
		),
		mcp.WithBoolean("case_insensitive",
			mcp.Description("Whether matching ignores case (default: false)"),
		),
		mcp.WithBoolean("match_filename_only",
			mcp.Description("Whether a single-segment pattern matches against the filename alone (default: false)"),
		),
		mcp.WithBoolean("editorconfig_matching",
			mcp.Description("Whether patterns match editorconfig-style against path suffixes (default: false)"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("globmatch", HandleGlobMatch)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(globMatchTool, wrappedHandler)

	log.Printf("[GlobMatch] Registered globmatch tool")
}
