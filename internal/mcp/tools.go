package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/docsection-mcp/internal/fetcher"
	"github.com/dshills/docsection-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams      = -32602 // Invalid method parameters
	ErrorCodeInternalError      = -32603 // Internal JSON-RPC error
	ErrorCodeUnsupportedDialect = -32001 // Dialect tag has no classifier
	ErrorCodeSectionLookup      = -32002 // Title matched zero or several sections
	ErrorCodeFetchFailed        = -32003 // Document download failed
)

// handleChunkDocument handles the chunk_document tool invocation
func (s *Server) handleChunkDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or not a string",
		})
	}

	tag, ok := args["dialect"].(string)
	if !ok || tag == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "dialect parameter is required", map[string]interface{}{
			"param":  "dialect",
			"reason": "missing or empty",
		})
	}

	dialect, err := types.ParseDialect(tag)
	if err != nil {
		return nil, dialectError(err)
	}

	doc, err := s.chunker.Chunk(text, dialect)
	if err != nil {
		return nil, dialectError(err)
	}

	return mcp.NewToolResultText(formatJSON(documentResponse(dialect, doc))), nil
}

// handleFetchDocument handles the fetch_document tool invocation
func (s *Server) handleFetchDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	locator, ok := args["locator"].(string)
	if !ok || strings.TrimSpace(locator) == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "locator parameter is required", map[string]interface{}{
			"param":  "locator",
			"reason": "missing or empty",
		})
	}

	// Only the locator is a valid source here
	src, err := s.resolveDocument(ctx, map[string]interface{}{
		"locator": locator,
		"dialect": args["dialect"],
	})
	if err != nil {
		return nil, err
	}

	doc, err := s.chunker.Chunk(src.text, src.dialect)
	if err != nil {
		return nil, dialectError(err)
	}

	response := documentResponse(src.dialect, doc)
	response["locator"] = locator

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetSection handles the get_section tool invocation
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	src, err := s.resolveDocument(ctx, args)
	if err != nil {
		return nil, err
	}

	var title *string
	if raw, present := args["title"]; present && raw != nil {
		t, ok := raw.(string)
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "title must be a string", map[string]interface{}{
				"param": "title",
			})
		}
		title = &t
	}

	doc, err := s.chunker.Chunk(src.text, src.dialect)
	if err != nil {
		return nil, dialectError(err)
	}

	section, err := doc.FindUnique(title)
	if err != nil {
		var lookupErr *types.SectionLookupError
		if errors.As(err, &lookupErr) {
			return nil, newMCPError(ErrorCodeSectionLookup, err.Error(), map[string]interface{}{
				"title": lookupErr.Title,
				"count": lookupErr.Count,
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "section lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"dialect": src.dialect,
		"title":   section.Title,
		"content": section.Content,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListSections handles the list_sections tool invocation
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	src, err := s.resolveDocument(ctx, args)
	if err != nil {
		return nil, err
	}

	doc, err := s.chunker.Chunk(src.text, src.dialect)
	if err != nil {
		return nil, dialectError(err)
	}

	entries := make([]map[string]interface{}, 0, doc.Len())
	for i, section := range doc.Sections() {
		entries = append(entries, map[string]interface{}{
			"index":          i,
			"title":          section.Title,
			"content_length": len(section.Content),
		})
	}

	response := map[string]interface{}{
		"dialect":       src.dialect,
		"section_count": doc.Len(),
		"sections":      entries,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// documentSource is document text together with its dialect
type documentSource struct {
	text    string
	dialect types.Dialect
}

// resolveDocument takes the document from the text argument, or downloads it
// from the locator argument. The dialect is required for text and inferred
// from the locator extension when omitted.
func (s *Server) resolveDocument(ctx context.Context, args map[string]interface{}) (*documentSource, error) {
	text, hasText := args["text"].(string)
	locator := getStringDefault(args, "locator", "")
	tag := getStringDefault(args, "dialect", "")

	if !hasText && strings.TrimSpace(locator) == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "text or locator parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "neither text nor locator given",
		})
	}

	var dialect types.Dialect
	switch {
	case tag != "":
		d, err := types.ParseDialect(tag)
		if err != nil {
			return nil, dialectError(err)
		}
		dialect = d
	case !hasText:
		d, ok := types.DialectFromPath(locator)
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "dialect cannot be inferred from locator", map[string]interface{}{
				"param":   "dialect",
				"locator": locator,
				"allowed": types.Dialects(),
			})
		}
		dialect = d
	default:
		return nil, newMCPError(ErrorCodeInvalidParams, "dialect parameter is required with text", map[string]interface{}{
			"param":  "dialect",
			"reason": "missing or empty",
		})
	}

	if hasText {
		return &documentSource{text: text, dialect: dialect}, nil
	}

	fetched, err := s.downloader.Fetch(ctx, locator)
	if err != nil {
		data := map[string]interface{}{
			"locator": locator,
			"error":   err.Error(),
		}
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			data["status_code"] = statusErr.StatusCode
		}
		return nil, newMCPError(ErrorCodeFetchFailed, "failed to fetch document", data)
	}

	return &documentSource{text: fetched, dialect: dialect}, nil
}

// Helper functions

// documentResponse formats a chunked document
func documentResponse(dialect types.Dialect, doc *types.Document) map[string]interface{} {
	return map[string]interface{}{
		"dialect":       dialect,
		"section_count": doc.Len(),
		"sections":      doc.Sections(),
	}
}

// dialectError converts a dialect resolution failure into an MCP error
func dialectError(err error) error {
	var dialectErr *types.UnsupportedDialectError
	if errors.As(err, &dialectErr) {
		return newMCPError(ErrorCodeUnsupportedDialect, err.Error(), map[string]interface{}{
			"param":   "dialect",
			"value":   dialectErr.Tag,
			"allowed": types.Dialects(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "chunking failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
