// Package editor serves the live diagram editor: inline theming warnings,
// preview preparation and the capability table.
package editor

import (
	"github.com/ziadkadry99/mermaidviz/internal/sanitize"
	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

// Analysis is everything the editor shows next to the code while typing.
type Analysis struct {
	DiagramType   theming.DiagramType   `json:"diagramType"`
	Capability    *theming.Capability   `json:"capability"`
	Limitation    string                `json:"limitation,omitempty"`
	Styling       theming.StylingReport `json:"styling"`
	HasThemeBlock bool                  `json:"hasThemeBlock"`
	ThemeBlock    string                `json:"themeBlock,omitempty"`
}

// Analyze classifies code and collects its theming warnings.
func Analyze(code string) Analysis {
	kind := theming.DetectDiagramType(code)
	a := Analysis{
		DiagramType:   kind,
		Styling:       theming.DetectUnsupportedStyling(code),
		HasThemeBlock: theming.HasThemeBlock(code),
	}
	if caps, ok := theming.Lookup(kind); ok {
		a.Capability = &caps
	}
	if msg, ok := theming.LimitationMessage(kind); ok {
		a.Limitation = msg
	}
	if block, ok := theming.ExtractThemeBlock(code); ok {
		a.ThemeBlock = block
	}
	return a
}

// Preview is the code handed to the renderer.
type Preview struct {
	Code     string                `json:"code"`
	Stripped bool                  `json:"stripped"`
	Report   theming.StylingReport `json:"report"`
}

// PreparePreview removes the directives the renderer would reject for this
// diagram type. Code without an unsupported attempt is returned unchanged.
func PreparePreview(code string) Preview {
	report := theming.DetectUnsupportedStyling(code)
	p := Preview{Code: code, Report: report}

	switch theming.FlaggedDirective(report) {
	case theming.DirectiveClassDef:
		p.Code = sanitize.StripClassDefs(code)
	case theming.DirectiveStyle:
		p.Code = sanitize.StripStyleDirectives(code)
	}
	p.Stripped = p.Code != code
	return p
}
