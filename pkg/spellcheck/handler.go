package spellcheck

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/Word-Monger/SpellSieve/pkg/dictionary"
	"github.com/Word-Monger/SpellSieve/pkg/ruleset"
	"github.com/Word-Monger/SpellSieve/pkg/stats"
	"github.com/Word-Monger/SpellSieve/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleSpellCheck is the handler function for the spellcheck tool
func HandleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract file or directory path
	path, ok := arguments["path"].(string)
	if !ok {
		return nil, fmt.Errorf("path must be a string")
	}

	// Extract check types
	opts := DefaultCheckOptions()
	if checkCommentsVal, ok := arguments["check_comments"].(bool); ok {
		opts.CheckComments = checkCommentsVal
	}
	if checkStringsVal, ok := arguments["check_strings"].(bool); ok {
		opts.CheckStrings = checkStringsVal
	}
	if checkIdentifiersVal, ok := arguments["check_identifiers"].(bool); ok {
		opts.CheckIdentifiers = checkIdentifiersVal
	}

	// Extract language (optional)
	opts.Language, _ = arguments["language"].(string)

	// Extract recursive flag
	if recursiveBool, ok := arguments["recursive"].(bool); ok {
		opts.Recursive = recursiveBool
	}

	// Extract use_relative_paths flag
	useRelativePaths := true // Default to using relative paths
	if useRelativePathsBool, ok := arguments["use_relative_paths"].(bool); ok {
		useRelativePaths = useRelativePathsBool
	}

	// Extract custom dictionary words
	var customWords []string
	if customDictVal, ok := arguments["custom_dictionary"].([]interface{}); ok {
		for _, word := range customDictVal {
			if wordStr, ok := word.(string); ok {
				customWords = append(customWords, wordStr)
			}
		}
	}

	// Extract session ID
	sessionID, _ := arguments["session_id"].(string)

	// Get root directory from workspace
	rootDir := workspace.GetRootDir(sessionID)
	log.Printf("[SpellCheck] Using workspace root directory: %s", rootDir)

	// Resolve the path
	var fullPath string
	if filepath.IsAbs(path) {
		fullPath = path
	} else {
		fullPath = filepath.Join(rootDir, path)
	}

	// Load the rule set: an explicit argument wins over the workspace binding
	rulesetPath, _ := arguments["ruleset"].(string)
	if rulesetPath == "" {
		rulesetPath = workspace.GetRulesetPath(sessionID)
	}
	var rules *ruleset.RuleSet
	if rulesetPath != "" {
		if !filepath.IsAbs(rulesetPath) {
			rulesetPath = filepath.Join(rootDir, rulesetPath)
		}
		var err error
		rules, err = ruleset.Load(rulesetPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[SpellCheck] Loaded ruleset: %s", rulesetPath)
	}

	// Build the dictionary for this run
	dict := dictionary.New()
	dict.AddWords(customWords...)

	checker := NewChecker(dict, rules, rootDir, opts)
	results, err := checker.CheckPath(fullPath)
	if err != nil {
		return nil, fmt.Errorf("error performing spell check: %v", err)
	}

	// Convert paths to relative if requested
	if useRelativePaths {
		for i := range results {
			relPath, err := filepath.Rel(rootDir, results[i].FilePath)
			if err == nil {
				results[i].FilePath = relPath
			}
		}
	}

	// Create the result
	result := &mcp.CallToolResult{}

	// Add the results to the response
	if len(results) > 0 {
		// Create a text summary
		var summary strings.Builder
		summary.WriteString(fmt.Sprintf("Found %d spelling issues:\n\n", len(results)))

		for i, issue := range results {
			summary.WriteString(fmt.Sprintf("%d. File: %s\n", i+1, issue.FilePath))
			summary.WriteString(fmt.Sprintf("   Line: %d, Columns: %d-%d\n", issue.LineNumber, issue.ColumnStart, issue.ColumnEnd))
			summary.WriteString(fmt.Sprintf("   Type: %s\n", issue.Type))
			summary.WriteString(fmt.Sprintf("   Word: %s\n", issue.Word))
			summary.WriteString(fmt.Sprintf("   Context: %s\n", issue.Context))
			if issue.Type == "doubled" {
				summary.WriteString(fmt.Sprintf("   Delete columns %d-%d to fix\n", issue.DeleteStart, issue.DeleteEnd))
			}
			if len(issue.Suggestions) > 0 {
				summary.WriteString(fmt.Sprintf("   Suggestions: %s\n", strings.Join(issue.Suggestions, ", ")))
			}
			summary.WriteString("\n")
		}

		result.Content = append(result.Content, mcp.TextContent{
			Text: summary.String(),
			Type: "text",
		})
	} else {
		result.Content = append(result.Content, mcp.TextContent{
			Text: "No spelling issues found.",
			Type: "text",
		})
	}

	return result, nil
}

// RegisterSpellCheck registers the spellcheck tool with the MCP server
func RegisterSpellCheck(mcpServer *server.MCPServer) {
	// Create the tool definition
	spellCheckTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Checks spelling in code comments, string literals, and identifiers. Supports multiple programming languages, detects doubled words, splits camelCase/PascalCase/snake_case identifiers into checkable words, and provides correction suggestions. Per-file behavior can be customized with a TOML ruleset of glob-scoped options."),
		mcp.WithString("path",
			mcp.Description("The path of the file or directory to check (absolute or relative to working directory)"),
			mcp.Required(),
		),
		mcp.WithString("language",
			mcp.Description("The programming language to check (default: auto-detect from file extension)"),
		),
		mcp.WithBoolean("check_comments",
			mcp.Description("Whether to check spelling in comments (default: true)"),
		),
		mcp.WithBoolean("check_strings",
			mcp.Description("Whether to check spelling in string literals (default: true)"),
		),
		mcp.WithBoolean("check_identifiers",
			mcp.Description("Whether to check spelling in identifiers (variable and function names) (default: true)"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Whether to check files recursively in subdirectories (default: true)"),
		),
		mcp.WithBoolean("use_relative_paths",
			mcp.Description("Whether to use relative paths in the results (default: true)"),
		),
		mcp.WithString("ruleset",
			mcp.Description("Path to a TOML rule file with glob-scoped checking options (default: the workspace's bound ruleset, if any)"),
		),
		mcp.WithArray("custom_dictionary",
			mcp.Description("A list of custom words to consider as correctly spelled"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID to use for resolving relative paths"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("spellcheck", HandleSpellCheck)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(spellCheckTool, wrappedHandler)

	log.Printf("[SpellCheck] Registered spellcheck tool")
}
