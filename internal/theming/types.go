// Package theming classifies Mermaid diagram source and reports which
// theming and styling features the pinned Mermaid release honors for it.
package theming

// MermaidVersion is the renderer release the limitation messages describe.
// Bump it together with the renderer dependency.
const MermaidVersion = "10.9.1"

// DiagramType identifies a Mermaid diagram kind.
type DiagramType string

const (
	Flowchart       DiagramType = "flowchart"
	Graph           DiagramType = "graph"
	ClassDiagram    DiagramType = "classDiagram"
	SequenceDiagram DiagramType = "sequenceDiagram"
	StateDiagram    DiagramType = "stateDiagram"
	ERDiagram       DiagramType = "erDiagram"
	Gantt           DiagramType = "gantt"
	Pie             DiagramType = "pie"
	Mindmap         DiagramType = "mindmap"
	Timeline        DiagramType = "timeline"
	GitGraph        DiagramType = "gitGraph"
	Journey         DiagramType = "journey"

	// Unknown is returned when the source matches no known header.
	Unknown DiagramType = "unknown"
)

// Capability describes the theming features honored for a diagram type.
type Capability struct {
	SupportsThemeVariables     bool   `json:"supportsThemeVariables"`
	SupportsClassDef           bool   `json:"supportsClassDef"`
	SupportsPerElementColoring bool   `json:"supportsPerElementColoring"`
	Description                string `json:"description"`
}

var (
	fullTheming    = Capability{true, true, true, "Full theming support including per-node classDef styling"}
	limitedTheming = Capability{true, false, false, "Limited themeVariables support"}
)

// typeOrder fixes the iteration order of the capability table.
var typeOrder = []DiagramType{
	Flowchart, Graph, ClassDiagram, SequenceDiagram, StateDiagram, ERDiagram,
	Gantt, Pie, Mindmap, Timeline, GitGraph, Journey,
}

// capabilities must hold an entry for every type in typeOrder.
var capabilities = map[DiagramType]Capability{
	Flowchart:       fullTheming,
	Graph:           fullTheming,
	ClassDiagram:    {true, false, false, "Global themeVariables only; per-class coloring not supported"},
	SequenceDiagram: {true, false, false, "Palette-level theming; per-actor/per-message coloring not supported"},
	StateDiagram:    {true, true, true, "Full theming support with state-level classDef"},
	ERDiagram:       {false, false, false, "Theming not supported; keep code clean without styling"},
	Gantt:           limitedTheming,
	Pie:             limitedTheming,
	Mindmap:         limitedTheming,
	Timeline:        limitedTheming,
	GitGraph:        {true, false, false, "Branch colors via themeVariables"},
	Journey:         {true, false, false, "Actor colors via themeVariables"},
}

// Lookup returns the capability record for t. The second result is false
// only for Unknown or a value outside the declared set.
func Lookup(t DiagramType) (Capability, bool) {
	c, ok := capabilities[t]
	return c, ok
}

// Types returns every declared diagram type in table order.
func Types() []DiagramType {
	out := make([]DiagramType, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// IsKnown reports whether t is a declared, non-sentinel type.
func (t DiagramType) IsKnown() bool {
	_, ok := capabilities[t]
	return ok
}

func (t DiagramType) String() string { return string(t) }

// ParseDiagramType maps a type name (as written in the table, case-sensitive)
// to its DiagramType, or Unknown.
func ParseDiagramType(s string) DiagramType {
	t := DiagramType(s)
	if t.IsKnown() {
		return t
	}
	return Unknown
}
