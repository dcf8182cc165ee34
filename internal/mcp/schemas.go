package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// dialectProperty describes the dialect parameter shared by every tool
func dialectProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"enum":        []string{"markdown", "latex", "rst"},
	}
}

// chunkDocumentTool returns the tool definition for chunk_document
func chunkDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunk_document",
		Description: "Split document text into titled sections according to its markup dialect",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Full document text",
				},
				"dialect": dialectProperty("Markup dialect of the text"),
			},
			Required: []string{"text", "dialect"},
		},
	}
}

// fetchDocumentTool returns the tool definition for fetch_document
func fetchDocumentTool() mcp.Tool {
	return mcp.Tool{
		Name:        "fetch_document",
		Description: "Download a document (e.g. owner/repo/ref/README.md from raw GitHub) and split it into sections",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"locator": map[string]interface{}{
					"type":        "string",
					"description": "Path relative to the configured base URL, or an absolute http(s) URL",
				},
				"dialect": dialectProperty("Markup dialect; inferred from the locator extension when omitted"),
			},
			Required: []string{"locator"},
		},
	}
}

// documentSourceProperties are the properties of tools that accept text or a locator
func documentSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Full document text (takes precedence over locator)",
		},
		"locator": map[string]interface{}{
			"type":        "string",
			"description": "Document to download when text is not given",
		},
		"dialect": dialectProperty("Markup dialect; required with text, inferred from the locator otherwise"),
	}
}

// getSectionTool returns the tool definition for get_section
func getSectionTool() mcp.Tool {
	props := documentSourceProperties()
	props["title"] = map[string]interface{}{
		"type":        "string",
		"description": "Exact section title; omit to get the untitled leading section",
	}

	return mcp.Tool{
		Name:        "get_section",
		Description: "Return the single section with the given title; fails when the title matches zero or several sections",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
		},
	}
}

// listSectionsTool returns the tool definition for list_sections
func listSectionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_sections",
		Description: "List section titles in document order with their content sizes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: documentSourceProperties(),
		},
	}
}
