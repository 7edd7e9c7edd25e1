package walker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names never descended into.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"vendor",
	".next",
	"dist",
	"build",
	"target",
	".venv",
	".idea",
	".vscode",
}

func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// MatchesInclude returns true if relPath matches any of the include
// patterns. An empty list includes everything.
func MatchesInclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	return matchesAny(relPath, patterns)
}

// MatchesExclude returns true if relPath matches any of the exclude
// patterns. An empty list excludes nothing.
func MatchesExclude(relPath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(relPath, patterns)
}

// matchesAny tries each doublestar pattern against the slash-separated
// path and then against its base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads gitignore-style patterns, skipping blanks and comments.
func loadIgnoreFile(data string) []string {
	var patterns []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesIgnore reports whether relPath falls under any ignore pattern. A
// pattern without a slash matches any path component; a trailing slash
// restricts it to directories.
func matchesIgnore(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	parts := strings.Split(normalized, "/")

	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if strings.Contains(pattern, "/") {
			pattern = strings.TrimPrefix(pattern, "/")
			if matched, _ := doublestar.Match(pattern, normalized); matched {
				return true
			}
			if matched, _ := doublestar.Match(pattern+"/**", normalized); matched {
				return true
			}
			continue
		}

		components := parts
		if dirOnly {
			components = parts[:len(parts)-1]
		}
		for _, part := range components {
			if matched, _ := filepath.Match(pattern, part); matched {
				return true
			}
		}
	}
	return false
}
