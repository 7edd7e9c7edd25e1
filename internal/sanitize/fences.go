// Package sanitize cleans language-model output into bare Mermaid source.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// quoteFence matches a '''-delimited block, optionally tagged mermaid.
var quoteFence = regexp.MustCompile(`'''(?:mermaid)?\s*([\s\S]*?)\s*'''`)

// strayFence matches fence markers left behind once the block is unwrapped.
var strayFence = regexp.MustCompile("```(?:mermaid)?|'''(?:mermaid)?")

var markdown = goldmark.New()

// codeBlock is a fenced block found in a Markdown document.
type codeBlock struct {
	lang string
	body string
}

// fencedBlocks parses src as Markdown and returns its fenced code blocks in
// document order.
func fencedBlocks(src string) []codeBlock {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var blocks []codeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fc, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := fc.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}
		// An unterminated trailing ``` opens an empty block; it is a stray marker.
		if strings.TrimSpace(body.String()) == "" {
			return ast.WalkSkipChildren, nil
		}
		blocks = append(blocks, codeBlock{
			lang: strings.ToLower(string(fc.Language(source))),
			body: body.String(),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// StripFences unwraps the diagram from a fenced block if the output has
// one, then removes any stray fence markers. A mermaid-tagged backtick
// block is preferred over an untagged one.
func StripFences(output string) string {
	code := output
	if m := quoteFence.FindStringSubmatch(output); m != nil {
		code = m[1]
	} else if blocks := fencedBlocks(output); len(blocks) > 0 {
		code = blocks[0].body
		for _, b := range blocks {
			if b.lang == "mermaid" {
				code = b.body
				break
			}
		}
	}
	code = strayFence.ReplaceAllString(code, "")
	return strings.TrimSpace(code)
}

// MermaidBlocks returns the body of every ```mermaid block in a Markdown
// document, trimmed.
func MermaidBlocks(doc string) []string {
	var out []string
	for _, b := range fencedBlocks(doc) {
		if b.lang == "mermaid" {
			out = append(out, strings.TrimSpace(b.body))
		}
	}
	return out
}
