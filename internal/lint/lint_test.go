package lint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/mermaidviz/internal/theming"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "docs/classes.mmd", "classDiagram\n  class Person\n  classDef hot fill:#f00\n")
	writeFile(t, root, "docs/flow.mmd", "graph TD\n  A --> B\n  classDef hot fill:#f00\n")
	writeFile(t, root, "README.md", "# Project\n\n```mermaid\nerDiagram\n  A ||--o{ B : has\n```\n\nText.\n\n```mermaid\nsequenceDiagram\n  A->>B: hi\n  style A fill:#f00\n```\n")
	writeFile(t, root, "drafts/ignored.mmd", "classDiagram\n  classDef x fill:#000\n")
	return root
}

func TestCheck(t *testing.T) {
	report, err := Check(Options{Root: fixture(t), Exclude: []string{"drafts/**"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Files)
	require.Len(t, report.Findings, 4)

	byLocation := make(map[string]Finding)
	for _, f := range report.Findings {
		byLocation[f.Location()] = f
	}

	er := byLocation["README.md#1"]
	assert.Equal(t, theming.ERDiagram, er.DiagramType)
	assert.False(t, er.Styling.HasUnsupportedAttempt)
	assert.NotEmpty(t, er.Limitation)

	seq := byLocation["README.md#2"]
	assert.Equal(t, theming.SequenceDiagram, seq.DiagramType)
	assert.True(t, seq.Styling.HasUnsupportedAttempt)

	assert.True(t, byLocation["docs/classes.mmd"].Styling.HasUnsupportedAttempt)
	assert.False(t, byLocation["docs/flow.mmd"].Styling.HasUnsupportedAttempt)

	assert.Equal(t, 2, report.Unsupported())
}

func TestCheckMissingRoot(t *testing.T) {
	_, err := Check(Options{Root: filepath.Join(t.TempDir(), "nope")}, nil)
	assert.Error(t, err)
}

func TestCheckEmptyTree(t *testing.T) {
	report, err := Check(Options{Root: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Files)
	assert.NotNil(t, report.Findings)
	assert.Equal(t, 0, report.Unsupported())
}

type recordingReporter struct {
	total   int
	updates []string
	done    bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.updates = append(r.updates, message) }
func (r *recordingReporter) Finish() { r.done = true }

func TestCheckReportsProgress(t *testing.T) {
	rec := &recordingReporter{}
	_, err := Check(Options{Root: fixture(t), Include: []string{"docs/**"}}, rec)
	require.NoError(t, err)

	assert.Equal(t, 2, rec.total)
	assert.Equal(t, []string{"docs/classes.mmd", "docs/flow.mmd"}, rec.updates)
	assert.True(t, rec.done)
}

func TestWriteText(t *testing.T) {
	report, err := Check(Options{Root: fixture(t), Exclude: []string{"drafts/**"}}, nil)
	require.NoError(t, err)

	var quiet bytes.Buffer
	WriteText(&quiet, report, false)
	out := quiet.String()
	assert.Contains(t, out, "docs/classes.mmd: classDiagram: Per-class coloring (classDef) is not supported")
	assert.Contains(t, out, "README.md#2: sequenceDiagram:")
	assert.NotContains(t, out, "docs/flow.mmd")
	assert.Contains(t, out, "3 files, 4 diagrams, 2 with unsupported styling\n")

	var verbose bytes.Buffer
	WriteText(&verbose, report, true)
	assert.Contains(t, verbose.String(), "docs/flow.mmd: flowchart: ok")
	assert.Contains(t, verbose.String(), "README.md#1: erDiagram: note: ER diagrams do not support theming")
}
