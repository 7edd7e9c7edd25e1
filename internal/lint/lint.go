// Package lint checks Mermaid diagrams in a directory tree for styling the
// renderer does not honor.
package lint

import (
	"fmt"
	"io"
	"os"

	"github.com/ziadkadry99/mermaidviz/internal/progress"
	"github.com/ziadkadry99/mermaidviz/internal/sanitize"
	"github.com/ziadkadry99/mermaidviz/internal/theming"
	"github.com/ziadkadry99/mermaidviz/internal/walker"
)

// Options selects the files to check.
type Options struct {
	Root    string
	Include []string
	Exclude []string
}

// Finding is the analysis of one diagram. Block is the 1-based position of
// the diagram among the ```mermaid blocks of a Markdown file, 0 for .mmd
// files.
type Finding struct {
	File          string                `json:"file"`
	Block         int                   `json:"block,omitempty"`
	DiagramType   theming.DiagramType   `json:"diagramType"`
	Styling       theming.StylingReport `json:"styling"`
	Limitation    string                `json:"limitation,omitempty"`
	HasThemeBlock bool                  `json:"hasThemeBlock"`
}

// Report is the outcome of Check.
type Report struct {
	Files    int       `json:"files"`
	Findings []Finding `json:"findings"`
}

// Unsupported counts the diagrams with an unsupported styling attempt.
func (r *Report) Unsupported() int {
	n := 0
	for _, f := range r.Findings {
		if f.Styling.HasUnsupportedAttempt {
			n++
		}
	}
	return n
}

// Check walks opts.Root and analyzes every diagram it finds. Unreadable
// files abort the run.
func Check(opts Options, reporter progress.Reporter) (*Report, error) {
	if reporter == nil {
		reporter = progress.Discard{}
	}

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: opts.Root,
		Include: opts.Include,
		Exclude: opts.Exclude,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{Files: len(files), Findings: []Finding{}}
	reporter.Start(len(files))
	defer reporter.Finish()

	for i, f := range files {
		reporter.Update(i+1, f.RelPath)

		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.RelPath, err)
		}

		switch f.Kind {
		case walker.KindMermaid:
			report.Findings = append(report.Findings, analyze(f.RelPath, 0, string(data)))
		case walker.KindMarkdown:
			for j, block := range sanitize.MermaidBlocks(string(data)) {
				report.Findings = append(report.Findings, analyze(f.RelPath, j+1, block))
			}
		}
	}
	return report, nil
}

func analyze(file string, block int, code string) Finding {
	kind := theming.DetectDiagramType(code)
	limitation, _ := theming.LimitationMessage(kind)
	return Finding{
		File:          file,
		Block:         block,
		DiagramType:   kind,
		Styling:       theming.DetectUnsupportedStyling(code),
		Limitation:    limitation,
		HasThemeBlock: theming.HasThemeBlock(code),
	}
}

// Location renders the file and, for Markdown, the block number.
func (f Finding) Location() string {
	if f.Block == 0 {
		return f.File
	}
	return fmt.Sprintf("%s#%d", f.File, f.Block)
}

// WriteText prints one line per diagram and a summary. Limitations are
// only printed when verbose is set.
func WriteText(w io.Writer, r *Report, verbose bool) {
	for _, f := range r.Findings {
		switch {
		case f.Styling.HasUnsupportedAttempt:
			fmt.Fprintf(w, "%s: %s: %s\n", f.Location(), f.DiagramType, f.Styling.Message)
		case verbose && f.Limitation != "":
			fmt.Fprintf(w, "%s: %s: note: %s\n", f.Location(), f.DiagramType, f.Limitation)
		case verbose:
			fmt.Fprintf(w, "%s: %s: ok\n", f.Location(), f.DiagramType)
		}
	}
	fmt.Fprintf(w, "%d files, %d diagrams, %d with unsupported styling\n", r.Files, len(r.Findings), r.Unsupported())
}
