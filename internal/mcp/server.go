package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/docsection-mcp/internal/chunker"
	"github.com/dshills/docsection-mcp/internal/fetcher"
)

const (
	// ServerName is the MCP server name
	ServerName = "docsection-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// ErrNoDownloader is returned when the server is created without a downloader
var ErrNoDownloader = errors.New("downloader is required")

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp        *server.MCPServer
	chunker    *chunker.Chunker
	downloader fetcher.Downloader
}

// NewServer creates a new MCP server that fetches documents with downloader
func NewServer(downloader fetcher.Downloader) (*Server, error) {
	if downloader == nil {
		return nil, ErrNoDownloader
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcp:        mcpServer,
		chunker:    chunker.New(),
		downloader: downloader,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// Tools returns the definitions of every registered tool
func (s *Server) Tools() []mcp.Tool {
	return []mcp.Tool{
		chunkDocumentTool(),
		fetchDocumentTool(),
		getSectionTool(),
		listSectionsTool(),
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(chunkDocumentTool(), s.handleChunkDocument)
	s.mcp.AddTool(fetchDocumentTool(), s.handleFetchDocument)
	s.mcp.AddTool(getSectionTool(), s.handleGetSection)
	s.mcp.AddTool(listSectionsTool(), s.handleListSections)
}
