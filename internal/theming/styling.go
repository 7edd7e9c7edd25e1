package theming

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var (
	classDefDirective = regexp.MustCompile(`(?i)classDef\s+\w+`)
	styleDirective    = regexp.MustCompile(`(?i)style\s+\w+\s+`)
)

// StylingReport is the result of DetectUnsupportedStyling. Message is set
// if and only if HasUnsupportedAttempt is true.
type StylingReport struct {
	HasUnsupportedAttempt bool
	DiagramType           DiagramType
	Message               string
}

// MarshalJSON renders an absent message as null.
func (r StylingReport) MarshalJSON() ([]byte, error) {
	var msg *string
	if r.HasUnsupportedAttempt {
		msg = &r.Message
	}
	return json.Marshal(struct {
		HasUnsupportedAttempt bool        `json:"hasUnsupportedAttempt"`
		DiagramType           DiagramType `json:"diagramType"`
		Message               *string     `json:"message"`
	}{r.HasUnsupportedAttempt, r.DiagramType, msg})
}

// Directive names a styling directive the detector looks for.
type Directive string

const (
	DirectiveClassDef Directive = "classDef"
	DirectiveStyle    Directive = "style"
)

// unsupportedMessages lists the types that get a warning for a directive
// their capability record rejects. Other restricted types (gantt, pie, ...)
// are deliberately absent; add them here to widen the warning.
var unsupportedMessages = map[Directive]map[DiagramType]string{
	DirectiveClassDef: {
		ClassDiagram: fmt.Sprintf("Per-class coloring (classDef) is not supported in class diagrams in Mermaid v%s. Only global themeVariables apply. See docs for details.", MermaidVersion),
		SequenceDiagram: fmt.Sprintf("classDef styling is not supported in sequence diagrams in Mermaid v%s. Use themeVariables for global palette colors.", MermaidVersion),
	},
	DirectiveStyle: {
		ClassDiagram:    styleMessage(ClassDiagram),
		SequenceDiagram: styleMessage(SequenceDiagram),
	},
}

func styleMessage(t DiagramType) string {
	return fmt.Sprintf("Per-element style directives are not supported in %s in Mermaid v%s. Use themeVariables for global colors.", t, MermaidVersion)
}

// DetectUnsupportedStyling reports whether source uses a classDef or style
// directive its diagram type does not honor. The classDef check runs first
// and at most one message is returned.
func DetectUnsupportedStyling(source string) StylingReport {
	kind := DetectDiagramType(source)
	report := StylingReport{DiagramType: kind}
	if kind == Unknown {
		return report
	}

	caps, _ := Lookup(kind)

	if !caps.SupportsClassDef && classDefDirective.MatchString(source) {
		if msg, ok := unsupportedMessages[DirectiveClassDef][kind]; ok {
			report.HasUnsupportedAttempt = true
			report.Message = msg
			return report
		}
	}

	if !caps.SupportsPerElementColoring && styleDirective.MatchString(source) {
		if msg, ok := unsupportedMessages[DirectiveStyle][kind]; ok {
			report.HasUnsupportedAttempt = true
			report.Message = msg
			return report
		}
	}

	return report
}

// FlaggedDirective returns which directive produced an unsupported-attempt
// report, or "" when the report is clean.
func FlaggedDirective(r StylingReport) Directive {
	if !r.HasUnsupportedAttempt {
		return ""
	}
	for d, byType := range unsupportedMessages {
		if byType[r.DiagramType] == r.Message {
			return d
		}
	}
	return ""
}
