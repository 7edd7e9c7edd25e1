// Package mcp exposes the diagram tooling as Model Context Protocol tools
// over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/mermaidviz/internal/flows"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the diagram tools.
type Server struct {
	flows *flows.Service
	mcp   *server.MCPServer
}

// NewServer creates an MCP server. The generate and enhance tools are only
// registered when svc is non-nil.
func NewServer(svc *flows.Service) *Server {
	s := &Server{flows: svc}

	s.mcp = server.NewMCPServer(
		"mermaidviz",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(detectDiagramTypeTool, s.handleDetectDiagramType)
	s.mcp.AddTool(checkStylingTool, s.handleCheckStyling)
	s.mcp.AddTool(themingLimitationsTool, s.handleThemingLimitations)
	s.mcp.AddTool(extractThemeBlockTool, s.handleExtractThemeBlock)
	s.mcp.AddTool(getExampleTool, s.handleGetExample)

	if s.flows != nil {
		s.mcp.AddTool(generateDiagramTool, s.handleGenerateDiagram)
		s.mcp.AddTool(enhanceDiagramTool, s.handleEnhanceDiagram)
	}
}

// Serve starts the MCP server on stdio. Stdout carries protocol messages;
// all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
