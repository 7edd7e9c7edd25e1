package sanitize

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

// Policy decides who owns per-element styling in generated diagrams.
type Policy string

const (
	// PolicyModel keeps classDef/linkStyle lines the model wrote.
	PolicyModel Policy = "model"
	// PolicyServer drops them; styling comes from the server's theme.
	PolicyServer Policy = "server"
)

// ParsePolicy validates a configured policy name. Empty means PolicyModel.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyModel:
		return PolicyModel, nil
	case PolicyServer:
		return PolicyServer, nil
	}
	return "", fmt.Errorf("invalid styling policy %q: must be one of model, server", s)
}

// Clean unwraps fenced model output and applies the styling policy.
func Clean(output string, p Policy) string {
	code := StripFences(output)
	if p == PolicyServer {
		code = StripStylingDirectives(code)
	}
	return code
}

// StripStylingDirectives removes every classDef and linkStyle line.
func StripStylingDirectives(code string) string {
	return dropLines(code, "classDef", "linkStyle")
}

// StripClassDefs removes every classDef line.
func StripClassDefs(code string) string {
	return dropLines(code, "classDef")
}

// StripStyleDirectives removes every per-element style line.
func StripStyleDirectives(code string) string {
	return dropLines(code, "style")
}

// StripThemeBlocks removes theme init directives and the blank lines they
// leave at the top of the diagram.
func StripThemeBlocks(code string) string {
	return strings.TrimLeft(theming.RemoveThemeBlocks(code), "\r\n")
}

// dropLines filters out lines whose first token is one of keywords,
// ignoring case.
func dropLines(code string, keywords ...string) string {
	lines := strings.Split(code, "\n")
	out := lines[:0]
	for _, line := range lines {
		if !startsWithKeyword(strings.TrimSpace(line), keywords) {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func startsWithKeyword(line string, keywords []string) bool {
	for _, kw := range keywords {
		if len(line) < len(kw) || !strings.EqualFold(line[:len(kw)], kw) {
			continue
		}
		rest := line[len(kw):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return true
		}
	}
	return false
}
