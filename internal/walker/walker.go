// Package walker finds the files under a directory that can hold Mermaid
// diagrams.
package walker

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMaxFileSize is the largest file read (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// FileInfo describes one discovered diagram source.
type FileInfo struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the root.
	Size    int64
	Kind    Kind
}

// WalkerConfig controls Walk.
type WalkerConfig struct {
	RootDir     string
	Include     []string // Doublestar globs; empty includes everything.
	Exclude     []string // Doublestar globs.
	MaxFileSize int64    // 0 means DefaultMaxFileSize.
}

// Walk returns every .mmd, .mermaid and Markdown file under
// config.RootDir that passes the filters and the root .gitignore, in
// lexical order. Binary and oversized files are skipped.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var ignore []string
	if data, err := os.ReadFile(filepath.Join(root, ".gitignore")); err == nil {
		ignore = loadIgnoreFile(string(data))
	}

	var files []FileInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}

		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		kind := DetectKind(d.Name())
		if kind == "" {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchesIgnore(relPath, ignore) {
			return nil
		}
		if !MatchesInclude(relPath, config.Include) || MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}
		if isBinary(path) {
			return nil
		}

		files = append(files, FileInfo{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
			Kind:    kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}
	return files, nil
}

// isBinary checks the first 512 bytes for NUL.
func isBinary(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return true
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return true
		}
	}
	return false
}
