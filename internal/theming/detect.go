package theming

import (
	"regexp"
	"strings"
)

// initBlock matches a %%{ ... }%% directive. The lazy body stops at the
// first closing "}%%", so nested braces inside the JSON are fine.
var initBlock = regexp.MustCompile(`%%\{[\s\S]*?\}%%`)

// headerRules are checked in order; "graph " keeps its trailing space so
// that e.g. "graphql" does not classify as a flowchart.
var headerRules = []struct {
	prefix string
	kind   DiagramType
}{
	{"graph ", Flowchart},
	{"flowchart", Flowchart},
	{"classdiagram", ClassDiagram},
	{"sequencediagram", SequenceDiagram},
	{"statediagram", StateDiagram}, // also stateDiagram-v2
	{"erdiagram", ERDiagram},
	{"gantt", Gantt},
	{"pie", Pie},
	{"mindmap", Mindmap},
	{"timeline", Timeline},
	{"gitgraph", GitGraph},
	{"journey", Journey},
}

// DetectDiagramType classifies source by its first line after init blocks
// are removed. It never fails; unrecognized input yields Unknown.
func DetectDiagramType(source string) DiagramType {
	normalized := strings.ToLower(strings.TrimSpace(source))
	normalized = strings.TrimSpace(initBlock.ReplaceAllString(normalized, ""))

	firstLine := normalized
	if i := strings.IndexByte(normalized, '\n'); i >= 0 {
		firstLine = normalized[:i]
	}
	firstLine = strings.TrimSpace(firstLine)

	for _, rule := range headerRules {
		if strings.HasPrefix(firstLine, rule.prefix) {
			return rule.kind
		}
	}
	return Unknown
}
