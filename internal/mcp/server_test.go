package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/mermaidviz/internal/flows"
	"github.com/ziadkadry99/mermaidviz/internal/llm/llmtest"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText joins the text content of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var b strings.Builder
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		wantName string
	}{
		{detectDiagramTypeTool, "detect_diagram_type"},
		{checkStylingTool, "check_styling"},
		{themingLimitationsTool, "theming_limitations"},
		{extractThemeBlockTool, "extract_theme_block"},
		{getExampleTool, "get_example"},
		{generateDiagramTool, "generate_diagram"},
		{enhanceDiagramTool, "enhance_diagram"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer(nil)
	if srv == nil || srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}

	svc := flows.NewService(llmtest.New("graph TD"), flows.Options{})
	if NewServer(svc).flows != svc {
		t.Error("flows service not set")
	}
}

func TestHandleDetectDiagramType(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	result, err := srv.handleDetectDiagramType(ctx, callRequest(map[string]any{"code": "erDiagram\n  A ||--o{ B : has"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, `"diagramType": "erDiagram"`) {
		t.Errorf("expected erDiagram in %s", text)
	}

	result, _ = srv.handleDetectDiagramType(ctx, callRequest(map[string]any{}))
	if !result.IsError {
		t.Error("expected error for missing code")
	}
}

func TestHandleCheckStyling(t *testing.T) {
	srv := NewServer(nil)

	result, err := srv.handleCheckStyling(context.Background(), callRequest(map[string]any{
		"code": "classDiagram\n  class A\n  classDef x fill:#f00",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, `"hasUnsupportedAttempt": true`) {
		t.Errorf("expected unsupported attempt in %s", text)
	}
	if !strings.Contains(text, "Per-class coloring (classDef) is not supported") {
		t.Errorf("expected class diagram message in %s", text)
	}
}

func TestHandleThemingLimitations(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	t.Run("single type", func(t *testing.T) {
		result, _ := srv.handleThemingLimitations(ctx, callRequest(map[string]any{"diagram_type": "erDiagram"}))
		text := resultText(t, result)
		if !strings.Contains(text, "**erDiagram**") || !strings.Contains(text, "ER diagrams do not support theming") {
			t.Errorf("unexpected output %s", text)
		}
	})

	t.Run("all types", func(t *testing.T) {
		result, _ := srv.handleThemingLimitations(ctx, callRequest(map[string]any{}))
		text := resultText(t, result)
		for _, name := range []string{"flowchart", "journey", "gitGraph"} {
			if !strings.Contains(text, "**"+name+"**") {
				t.Errorf("expected %s in listing", name)
			}
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		result, _ := srv.handleThemingLimitations(ctx, callRequest(map[string]any{"diagram_type": "sankey"}))
		if !result.IsError {
			t.Error("expected error for unknown type")
		}
	})
}

func TestHandleExtractThemeBlock(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	block := `%%{init: {"theme": "forest"}}%%`
	result, _ := srv.handleExtractThemeBlock(ctx, callRequest(map[string]any{"code": block + "\ngraph TD"}))
	if got := resultText(t, result); got != block {
		t.Errorf("got %q, want %q", got, block)
	}

	result, _ = srv.handleExtractThemeBlock(ctx, callRequest(map[string]any{"code": "graph TD"}))
	if got := resultText(t, result); got != "No theme block found." {
		t.Errorf("got %q", got)
	}
}

func TestHandleGetExample(t *testing.T) {
	srv := NewServer(nil)
	ctx := context.Background()

	result, _ := srv.handleGetExample(ctx, callRequest(map[string]any{}))
	if !strings.Contains(resultText(t, result), "- c4-diagram: C4 Diagram (Systems)") {
		t.Errorf("listing missing C4 example: %s", resultText(t, result))
	}

	result, _ = srv.handleGetExample(ctx, callRequest(map[string]any{"slug": "mindmap"}))
	if result.IsError || !strings.Contains(resultText(t, result), `"diagramType": "mindmap"`) {
		t.Errorf("unexpected result %s", resultText(t, result))
	}

	result, _ = srv.handleGetExample(ctx, callRequest(map[string]any{"slug": "nope"}))
	if !result.IsError {
		t.Error("expected error for unknown slug")
	}
}

func TestHandleGenerateAndEnhance(t *testing.T) {
	fake := llmtest.New("```mermaid\ngraph TD\n  A --> B\n```")
	srv := NewServer(flows.NewService(fake, flows.Options{}))
	ctx := context.Background()

	result, err := srv.handleGenerateDiagram(ctx, callRequest(map[string]any{"description": "two boxes"}))
	if err != nil || result.IsError {
		t.Fatalf("generate failed: %v %v", err, result.Content)
	}
	if got := resultText(t, result); got != "graph TD\n  A --> B" {
		t.Errorf("generate = %q", got)
	}

	result, _ = srv.handleEnhanceDiagram(ctx, callRequest(map[string]any{"diagram_code": "graph TD"}))
	if !result.IsError {
		t.Error("expected error for missing enhancement_prompt")
	}

	fake.Err = errors.New("quota exceeded for key sk-123")
	result, _ = srv.handleEnhanceDiagram(ctx, callRequest(map[string]any{
		"diagram_code":       "graph TD",
		"enhancement_prompt": "add C",
	}))
	if !result.IsError {
		t.Fatal("expected tool error on upstream failure")
	}
	text := resultText(t, result)
	if text != flows.ErrEnhancementFailed.Error() {
		t.Errorf("upstream detail leaked or wrong message: %q", text)
	}
}
