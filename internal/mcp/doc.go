// Package mcp exposes the docsection chunker as Model Context Protocol tools.
//
// The server speaks MCP over stdio and registers four tools:
//
//   - chunk_document: split caller-provided text into sections
//   - fetch_document: download a document by locator, then split it
//   - get_section: return the single section with a given title
//   - list_sections: list titles in document order with content sizes
//
// get_section and list_sections accept either text or a locator. When only a
// locator is given, the dialect may be omitted and is inferred from the file
// extension (.md, .tex, .rst).
//
// # Error Handling
//
// Failures are returned as *MCPError values carrying a JSON-RPC style code and
// structured data:
//
//	-32602  invalid parameters
//	-32603  internal error
//	-32001  unsupported dialect (data: value, allowed)
//	-32002  section lookup matched zero or several sections (data: title, count)
//	-32003  document download failed (data: locator, error, status_code)
//
// A unique lookup never falls back to the first match.
//
// # Example Request
//
//	{
//	  "name": "get_section",
//	  "arguments": {
//	    "locator": "BenGale93/cli-diary/refs/heads/master/README.md",
//	    "title": "cli-diary"
//	  }
//	}
package mcp
