package services

import (
	"path/filepath"
	"strings"
)

// IgnoreMatcher skips coordinates matching any configured pattern.
// A pattern without a colon only matches the groupId.
type IgnoreMatcher struct {
	patterns []string
}

// NewIgnoreMatcher creates a matcher; invalid patterns never match.
func NewIgnoreMatcher(patterns []string) *IgnoreMatcher {
	normalized := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !strings.Contains(pattern, ":") {
			pattern += ":*"
		}
		normalized = append(normalized, pattern)
	}
	return &IgnoreMatcher{patterns: normalized}
}

// Matches reports whether groupId:artifactId is ignored.
func (it *IgnoreMatcher) Matches(groupID, artifactID string) bool {
	coordinate := groupID + ":" + artifactID
	for _, pattern := range it.patterns {
		if ok, err := filepath.Match(pattern, coordinate); err == nil && ok {
			return true
		}
	}
	return false
}
