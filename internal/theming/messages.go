package theming

import (
	"fmt"
	"regexp"
)

// LimitationMessage returns the user-facing theming limitation for t, if
// any. Fully themable types and Unknown report none.
func LimitationMessage(t DiagramType) (string, bool) {
	switch t {
	case Unknown:
		return "", false
	case ClassDiagram:
		return fmt.Sprintf("Class diagram coloring is global-only in Mermaid v%s. Per-class styling is not supported.", MermaidVersion), true
	case SequenceDiagram:
		return fmt.Sprintf("Sequence diagram uses palette-level colors in Mermaid v%s. Per-actor/per-message styling is not supported.", MermaidVersion), true
	case ERDiagram:
		return "ER diagrams do not support theming. Theme blocks are intentionally excluded.", true
	}

	caps, ok := Lookup(t)
	if ok && !caps.SupportsPerElementColoring && caps.SupportsThemeVariables {
		return fmt.Sprintf("%s supports global themeVariables only. Per-element styling is not available.", t), true
	}
	return "", false
}

var themeBlock = regexp.MustCompile(`(?i)%%\{[\s\S]*?(?:theme|themeVariables)[\s\S]*?\}%%`)

// HasThemeBlock reports whether source contains a %%{...}%% directive that
// mentions theme or themeVariables.
func HasThemeBlock(source string) bool {
	return themeBlock.MatchString(source)
}

// ExtractThemeBlock returns the first theme directive in source, delimiters
// included.
func ExtractThemeBlock(source string) (string, bool) {
	loc := themeBlock.FindStringIndex(source)
	if loc == nil {
		return "", false
	}
	return source[loc[0]:loc[1]], true
}

// RemoveThemeBlocks deletes every theme directive from source.
func RemoveThemeBlocks(source string) string {
	return themeBlock.ReplaceAllString(source, "")
}
