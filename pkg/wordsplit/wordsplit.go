// Package wordsplit exposes the word splitter as an MCP tool, mainly for
// inspecting how a piece of text breaks into spell-checkable candidates.
package wordsplit

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Word-Monger/SpellSieve/pkg/splitter"
	"github.com/Word-Monger/SpellSieve/pkg/stats"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HandleWordSplit is the handler function for the wordsplit tool
func HandleWordSplit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	// Extract the text to split
	text, ok := arguments["text"].(string)
	if !ok {
		return nil, fmt.Errorf("text must be a string")
	}

	// Build the configuration from the option flags
	cfg := splitter.DefaultConfig()
	if v, ok := arguments["treat_underscore_as_separator"].(bool); ok {
		cfg.TreatUnderscoreAsSeparator = v
	}
	if v, ok := arguments["ignore_mixed_case_words"].(bool); ok {
		cfg.IgnoreMixedCaseWords = v
	}
	if v, ok := arguments["ignore_mnemonics"].(bool); ok {
		cfg.IgnoreMnemonics = v
	}
	if v, ok := arguments["detect_doubled_words"].(bool); ok {
		cfg.DetectDoubledWords = v
	}
	if v, ok := arguments["can_contain_escapes"].(bool); ok {
		cfg.CanContainEscapes = v
		cfg.IsCStyleCode = v
	}
	if v, ok := arguments["span_string_concatenation"].(bool); ok {
		cfg.SpanStringConcatenation = v
	}

	// Run the scan
	var lines []string
	s := splitter.Split(text, cfg)
	for s.Scan() {
		w := s.Word()
		line := fmt.Sprintf("[%d:%d) %q", w.Span.Start, w.Span.End, s.ActualWord())
		if w.Doubled != nil {
			line += fmt.Sprintf(" doubled (delete [%d:%d))", w.Doubled.Delete.Start, w.Doubled.Delete.End)
		}
		lines = append(lines, line)
	}

	resultText := fmt.Sprintf("Split %d words:\n", len(lines))
	if len(lines) > 0 {
		resultText += strings.Join(lines, "\n") + "\n"
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: resultText,
			},
		},
	}, nil
}

// RegisterWordSplit registers the wordsplit tool with the MCP server
func RegisterWordSplit(mcpServer *server.MCPServer) {
	// Create the tool definition
	wordSplitTool := mcp.NewTool("wordsplit",
		mcp.WithDescription("Splits text into spell-checkable word candidates, showing each word's character span. Skips escape sequences, XML entities, and format specifiers; splits camelCase/PascalCase words; annotates doubled words with the span to delete."),
		mcp.WithString("text",
			mcp.Description("The text to split into words"),
			mcp.Required(),
		),
		mcp.WithBoolean("treat_underscore_as_separator",
			mcp.Description("Whether underscores break words (default: false)"),
		),
		mcp.WithBoolean("ignore_mixed_case_words",
			mcp.Description("Whether to suppress camelCase/PascalCase splitting (default: false)"),
		),
		mcp.WithBoolean("ignore_mnemonics",
			mcp.Description("Whether to elide '&' mnemonic markers from words (default: false)"),
		),
		mcp.WithBoolean("detect_doubled_words",
			mcp.Description("Whether to annotate doubled words (default: true)"),
		),
		mcp.WithBoolean("can_contain_escapes",
			mcp.Description("Whether to treat the text as C-style code with escape sequences (default: false)"),
		),
		mcp.WithBoolean("span_string_concatenation",
			mcp.Description("Whether words span string-literal concatenations (default: false)"),
		),
	)

	// Wrap the handler with stats tracking
	wrappedHandler := stats.WrapHandler("wordsplit", HandleWordSplit)

	// Register the tool with the wrapped handler
	mcpServer.AddTool(wordSplitTool, wrappedHandler)

	log.Printf("[WordSplit] Registered wordsplit tool")
}
