package util

import (
	"path/filepath"
	"strings"

	"review-bot/src/config"
)

// ExclusionMatcher matches file paths against configured ignore patterns
type ExclusionMatcher struct {
	filePatterns []string
	files        []string
}

// NewExclusionMatcher creates a new exclusion matcher from config
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	return &ExclusionMatcher{
		filePatterns: cfg.FilePatterns,
		files:        cfg.Files,
	}
}

// Matches checks if a file should be excluded from review
func (m *ExclusionMatcher) Matches(filePath string) bool {
	for _, f := range m.files {
		if filePath == f {
			return true
		}
	}

	base := filepath.Base(filePath)
	for _, pattern := range m.filePatterns {
		if MatchGlob(pattern, filePath) {
			return true
		}
		// Bare patterns like "*.md" should match regardless of directory.
		if !strings.Contains(pattern, "/") {
			if matched, _ := filepath.Match(pattern, base); matched {
				return true
			}
		}
	}

	return false
}

// MatchGlob matches a path against a glob pattern, including ** patterns
func MatchGlob(pattern, path string) bool {
	if strings.Contains(pattern, "**") {
		return matchDoubleGlob(pattern, path)
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}

// matchDoubleGlob handles ** patterns in globs
func matchDoubleGlob(pattern, path string) bool {
	parts := strings.Split(pattern, "**")

	// Patterns like "**/tests/**" reduce to a path-segment containment check.
	if len(parts) == 3 && parts[0] == "" && parts[2] == "" {
		segment := strings.Trim(parts[1], "/")
		return strings.Contains(path, "/"+segment+"/") || strings.HasPrefix(path, segment+"/")
	}
	if len(parts) != 2 {
		return false
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	switch {
	case prefix == "" && suffix != "":
		return strings.HasSuffix(path, suffix) || strings.Contains(path, "/"+suffix)
	case suffix == "" && prefix != "":
		return strings.HasPrefix(path, prefix) || strings.Contains(path, prefix+"/")
	case prefix != "" && suffix != "":
		return strings.Contains(path, prefix) && strings.Contains(path, suffix)
	}

	return false
}
