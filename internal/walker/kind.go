package walker

import (
	"path/filepath"
	"strings"
)

// Kind says how a file holds Mermaid source.
type Kind string

const (
	// KindMermaid is a file that is a single diagram.
	KindMermaid Kind = "mermaid"
	// KindMarkdown is a document that may embed ```mermaid blocks.
	KindMarkdown Kind = "markdown"
)

var extensionToKind = map[string]Kind{
	".mmd":      KindMermaid,
	".mermaid":  KindMermaid,
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".mdx":      KindMarkdown,
}

// DetectKind returns the Kind for a filename, or "" if the file cannot
// contain diagrams.
func DetectKind(name string) Kind {
	return extensionToKind[strings.ToLower(filepath.Ext(name))]
}
