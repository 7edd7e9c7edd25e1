package theming

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDiagramType(t *testing.T) {
	tests := []struct {
		name string
		code string
		want DiagramType
	}{
		{"graph header", "graph TD\n    A-->B", Flowchart},
		{"flowchart header", "flowchart LR\n    A-->B", Flowchart},
		{"class diagram", "classDiagram\n    class Person", ClassDiagram},
		{"sequence diagram", "sequenceDiagram\n    Alice->>Bob: Hello", SequenceDiagram},
		{"state diagram v2", "stateDiagram-v2\n    [*] --> Idle", StateDiagram},
		{"state diagram", "stateDiagram\n    [*] --> Idle", StateDiagram},
		{"er diagram", "erDiagram\n    CUSTOMER ||--o{ ORDER : places", ERDiagram},
		{"gantt", "gantt\n  title Plan", Gantt},
		{"pie", "pie\n  \"A\" : 1", Pie},
		{"mindmap", "mindmap\n  root((Life))", Mindmap},
		{"timeline", "timeline\n  title AI", Timeline},
		{"git graph", "gitGraph\n  commit", GitGraph},
		{"journey", "journey\n  title Onboarding", Journey},
		{"mixed case and padding", "   \n\tSEQUENCEDIAGRAM  \n  A->>B: hi\n", SequenceDiagram},
		{"unknown text", "random text", Unknown},
		{"empty", "", Unknown},
		{"graph needs a direction", "graphql schema", Unknown},
		{"quadrant chart is not declared", "quadrantChart\n  title Risk", Unknown},
		{
			"init block before header",
			"%%{init: {\"theme\": \"base\"}}%%\nclassDiagram\n    class Person",
			ClassDiagram,
		},
		{
			"multi-line init block with nested braces",
			"%%{init: {\n  \"theme\": \"base\",\n  \"themeVariables\": {\"primaryColor\": \"#fff\"}\n}}%%\nsequenceDiagram\n  A->>B: hi",
			SequenceDiagram,
		},
		{"init block only", "%%{init: {\"theme\": \"dark\"}}%%", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDiagramType(tt.code))
		})
	}
}

func TestDetectUnsupportedStyling(t *testing.T) {
	t.Run("classDef in class diagram", func(t *testing.T) {
		r := DetectUnsupportedStyling("classDiagram\n    class Person\n    classDef highlight fill:#f9f")
		assert.True(t, r.HasUnsupportedAttempt)
		assert.Equal(t, ClassDiagram, r.DiagramType)
		assert.Contains(t, r.Message, "Per-class coloring")
		assert.Contains(t, r.Message, MermaidVersion)
		assert.Equal(t, DirectiveClassDef, FlaggedDirective(r))
	})

	t.Run("style directive in class diagram", func(t *testing.T) {
		r := DetectUnsupportedStyling("classDiagram\n    class Person\n    style Person fill:#f9f")
		assert.True(t, r.HasUnsupportedAttempt)
		assert.Equal(t, ClassDiagram, r.DiagramType)
		assert.Contains(t, r.Message, "Per-element style directives")
		assert.Contains(t, r.Message, "classDiagram")
		assert.Equal(t, DirectiveStyle, FlaggedDirective(r))
	})

	t.Run("classDef in sequence diagram", func(t *testing.T) {
		r := DetectUnsupportedStyling("sequenceDiagram\n  Alice->>Bob: hi\n  CLASSDEF warm fill:#f00")
		assert.True(t, r.HasUnsupportedAttempt)
		assert.Contains(t, r.Message, "classDef styling")
		assert.Contains(t, r.Message, "sequence diagrams")
	})

	t.Run("classDef wins over style", func(t *testing.T) {
		r := DetectUnsupportedStyling("classDiagram\n  style Person fill:#f9f\n  classDef hot fill:#f00")
		assert.Contains(t, r.Message, "Per-class coloring")
	})

	t.Run("flowchart supports classDef", func(t *testing.T) {
		r := DetectUnsupportedStyling("graph TD\nA-->B\nclassDef highlight fill:#f9f\nclass A highlight")
		assert.False(t, r.HasUnsupportedAttempt)
		assert.Equal(t, Flowchart, r.DiagramType)
		assert.Empty(t, r.Message)
	})

	t.Run("restricted types outside the warning table stay quiet", func(t *testing.T) {
		r := DetectUnsupportedStyling("gantt\n  title Plan\n  classDef late fill:#f00")
		assert.False(t, r.HasUnsupportedAttempt)
		assert.Equal(t, Gantt, r.DiagramType)
	})

	t.Run("unknown input", func(t *testing.T) {
		r := DetectUnsupportedStyling("random text")
		assert.False(t, r.HasUnsupportedAttempt)
		assert.Equal(t, Unknown, r.DiagramType)
		assert.Empty(t, r.Message)
		assert.Equal(t, Directive(""), FlaggedDirective(r))
	})
}

func TestStylingReportJSON(t *testing.T) {
	clean, err := json.Marshal(StylingReport{DiagramType: Flowchart})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasUnsupportedAttempt":false,"diagramType":"flowchart","message":null}`, string(clean))

	flagged, err := json.Marshal(DetectUnsupportedStyling("classDiagram\nclassDef a fill:#fff"))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(flagged, &decoded))
	assert.Equal(t, true, decoded["hasUnsupportedAttempt"])
	assert.NotNil(t, decoded["message"])
}

func TestLimitationMessage(t *testing.T) {
	msg, ok := LimitationMessage(ClassDiagram)
	require.True(t, ok)
	assert.Contains(t, msg, "global-only")
	assert.Contains(t, msg, MermaidVersion)

	msg, ok = LimitationMessage(SequenceDiagram)
	require.True(t, ok)
	assert.Contains(t, msg, "palette-level")
	assert.Contains(t, msg, MermaidVersion)

	msg, ok = LimitationMessage(ERDiagram)
	require.True(t, ok)
	assert.Contains(t, msg, "not support theming")

	msg, ok = LimitationMessage(Gantt)
	require.True(t, ok)
	assert.Equal(t, "gantt supports global themeVariables only. Per-element styling is not available.", msg)

	for _, full := range []DiagramType{Flowchart, Graph, StateDiagram, Unknown, DiagramType("bogus")} {
		_, ok := LimitationMessage(full)
		assert.False(t, ok, "expected no limitation for %s", full)
	}
}

func TestThemeBlocks(t *testing.T) {
	themed := "%%{init: {\"theme\": \"base\"}}%%\ngraph TD\n    A-->B"
	assert.True(t, HasThemeBlock(themed))
	assert.True(t, HasThemeBlock("%%{init: {\"themeVariables\": {\"primaryColor\": \"#fff\"}}}%%\ngraph TD\n    A-->B"))
	assert.True(t, HasThemeBlock("graph TD\n%%{INIT: {\"THEME\": \"dark\"}}%%\nA-->B"))
	assert.False(t, HasThemeBlock("graph TD\n    A-->B"))
	assert.False(t, HasThemeBlock("%%{init: {\"flowchart\": {\"curve\": \"basis\"}}}%%\ngraph TD"))

	block, ok := ExtractThemeBlock(themed)
	require.True(t, ok)
	assert.Equal(t, "%%{init: {\"theme\": \"base\"}}%%", block)

	_, ok = ExtractThemeBlock("graph TD\n    A-->B")
	assert.False(t, ok)

	assert.Equal(t, "\ngraph TD\n    A-->B", RemoveThemeBlocks(themed))
}

func TestCapabilityTableIsTotal(t *testing.T) {
	for _, dt := range Types() {
		_, ok := Lookup(dt)
		assert.True(t, ok, "missing capability for %s", dt)
		assert.True(t, dt.IsKnown())
	}
	assert.Len(t, Types(), 12)
	_, ok := Lookup(Unknown)
	assert.False(t, ok)
}

func TestCapabilityFlags(t *testing.T) {
	tests := []struct {
		kind                        DiagramType
		themeVars, classDef, perElt bool
	}{
		{Flowchart, true, true, true},
		{ClassDiagram, true, false, false},
		{SequenceDiagram, true, false, false},
		{ERDiagram, false, false, false},
		{StateDiagram, true, true, true},
		{Journey, true, false, false},
	}
	for _, tt := range tests {
		c, _ := Lookup(tt.kind)
		assert.Equal(t, tt.themeVars, c.SupportsThemeVariables, "%s themeVariables", tt.kind)
		assert.Equal(t, tt.classDef, c.SupportsClassDef, "%s classDef", tt.kind)
		assert.Equal(t, tt.perElt, c.SupportsPerElementColoring, "%s per-element", tt.kind)
		assert.NotEmpty(t, c.Description)
	}
}

func TestParseDiagramType(t *testing.T) {
	assert.Equal(t, ClassDiagram, ParseDiagramType("classDiagram"))
	assert.Equal(t, Unknown, ParseDiagramType("classdiagram"))
	assert.Equal(t, Unknown, ParseDiagramType("unknown"))
	assert.Equal(t, "gitGraph", strings.TrimSpace(GitGraph.String()))
}
