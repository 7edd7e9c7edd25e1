package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

var pageTmpl = template.Must(template.New("gallery").Parse(pageTemplate))

// Markdown renders the examples as one Markdown document: a section per
// example with a live diagram and its highlighted source.
func Markdown(list []AnnotatedExample) string {
	var b strings.Builder
	b.WriteString("# Diagram gallery\n\n")
	fmt.Fprintf(&b, "Rendered with Mermaid v%s. Open an example in the editor to modify it.\n\n", theming.MermaidVersion)

	for _, e := range list {
		fmt.Fprintf(&b, "## %s\n\n", e.Title)
		fmt.Fprintf(&b, "%s\n\n", e.Description)
		fmt.Fprintf(&b, "| Category | Type |\n|---|---|\n| %s | `%s` |\n\n", e.Category, e.DiagramType)
		if e.Limitation != "" {
			fmt.Fprintf(&b, "> %s\n\n", e.Limitation)
		}
		fmt.Fprintf(&b, "<div class=\"mermaid\">\n%s\n</div>\n\n", template.HTMLEscapeString(dropBlankLines(e.Code)))
		fmt.Fprintf(&b, "```mermaid\n%s\n```\n\n", e.Code)
	}
	return b.String()
}

// dropBlankLines keeps a raw HTML block from ending early; Mermaid ignores
// blank lines.
func dropBlankLines(code string) string {
	lines := strings.Split(code, "\n")
	out := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// RenderPage converts the gallery Markdown to a standalone HTML page.
func RenderPage(list []AnnotatedExample) ([]byte, error) {
	var content bytes.Buffer
	if err := md.Convert([]byte(Markdown(list)), &content); err != nil {
		return nil, fmt.Errorf("converting gallery markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTmpl.Execute(&page, struct {
		MermaidVersion string
		Content        template.HTML
	}{theming.MermaidVersion, template.HTML(content.String())})
	if err != nil {
		return nil, fmt.Errorf("executing gallery template: %w", err)
	}
	return page.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Gallery - mermaidviz</title>
  <script src="https://cdn.jsdelivr.net/npm/mermaid@{{.MermaidVersion}}/dist/mermaid.min.js"></script>
  <style>
    body { font-family: Inter, system-ui, sans-serif; max-width: 960px; margin: 0 auto; padding: 24px; color: #003A57; }
    h2 { border-bottom: 1px solid #CFE3EE; padding-bottom: 4px; margin-top: 40px; }
    blockquote { background: #FFF8D6; border-left: 4px solid #D69E00; margin: 0 0 12px; padding: 8px 12px; color: #705400; }
    table { border-collapse: collapse; margin-bottom: 12px; }
    td, th { border: 1px solid #CFE3EE; padding: 4px 10px; }
    pre { padding: 12px; border-radius: 4px; overflow: auto; }
    .mermaid { background: #fff; border: 1px solid #CFE3EE; border-radius: 4px; padding: 12px; margin-bottom: 12px; }
  </style>
</head>
<body>
  <p><a href="/">Back to editor</a></p>
  {{.Content}}
  <script>mermaid.initialize({ startOnLoad: true });</script>
</body>
</html>
`
