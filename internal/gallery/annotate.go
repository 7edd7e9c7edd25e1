package gallery

import "github.com/ziadkadry99/mermaidviz/internal/theming"

// AnnotatedExample is an Example with the theming facts for its code.
type AnnotatedExample struct {
	Example
	DiagramType theming.DiagramType `json:"diagramType"`
	Limitation  string              `json:"limitation,omitempty"`
}

// Annotate attaches the detected diagram type and any limitation message.
func Annotate(e Example) AnnotatedExample {
	kind := theming.DetectDiagramType(e.Code)
	msg, _ := theming.LimitationMessage(kind)
	return AnnotatedExample{Example: e, DiagramType: kind, Limitation: msg}
}

// Annotated returns every example annotated, in display order.
func Annotated() []AnnotatedExample {
	return annotateAll(examples)
}

func annotateAll(list []Example) []AnnotatedExample {
	out := make([]AnnotatedExample, 0, len(list))
	for _, e := range list {
		out = append(out, Annotate(e))
	}
	return out
}
