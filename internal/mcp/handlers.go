package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/mermaidviz/internal/editor"
	"github.com/ziadkadry99/mermaidviz/internal/flows"
	"github.com/ziadkadry99/mermaidviz/internal/gallery"
	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

func (s *Server) handleDetectDiagramType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	return jsonResult(editor.Analyze(code))
}

func (s *Server) handleCheckStyling(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	return jsonResult(theming.DetectUnsupportedStyling(code))
}

func (s *Server) handleThemingLimitations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if name := request.GetString("diagram_type", ""); name != "" {
		t := theming.ParseDiagramType(name)
		if !t.IsKnown() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown diagram type %q", name)), nil
		}
		return mcp.NewToolResultText(describeType(t)), nil
	}

	var b strings.Builder
	for _, t := range theming.Types() {
		b.WriteString(describeType(t))
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

// describeType renders one capability row as a Markdown bullet.
func describeType(t theming.DiagramType) string {
	caps, _ := theming.Lookup(t)
	line := fmt.Sprintf("- **%s**: %s (themeVariables: %s, classDef: %s, per-element: %s)",
		t, caps.Description, yesNo(caps.SupportsThemeVariables), yesNo(caps.SupportsClassDef), yesNo(caps.SupportsPerElementColoring))
	if msg, ok := theming.LimitationMessage(t); ok {
		line += "\n  " + msg
	}
	return line
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (s *Server) handleExtractThemeBlock(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}
	block, ok := theming.ExtractThemeBlock(code)
	if !ok {
		return mcp.NewToolResultText("No theme block found."), nil
	}
	return mcp.NewToolResultText(block), nil
}

func (s *Server) handleGetExample(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := request.GetString("slug", "")
	if slug == "" {
		var b strings.Builder
		for _, e := range gallery.All() {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", e.Slug, e.Title, e.Category)
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	e, ok := gallery.Find(slug)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no example named %q", slug)), nil
	}
	return jsonResult(gallery.Annotate(e))
}

func (s *Server) handleGenerateDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: description"), nil
	}

	out, err := s.flows.Generate(ctx, flows.GenerateInput{Description: description})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out.MermaidCode), nil
}

func (s *Server) handleEnhanceDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("diagram_code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: diagram_code"), nil
	}
	prompt, err := request.RequireString("enhancement_prompt")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: enhancement_prompt"), nil
	}

	out, err := s.flows.Enhance(ctx, flows.EnhanceInput{DiagramCode: code, EnhancementPrompt: prompt})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out.EnhancedDiagramCode), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
