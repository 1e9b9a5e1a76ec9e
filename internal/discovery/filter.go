package discovery

import (
	"path/filepath"
	"strings"

	"wct/internal/domain"
)

// Filter filters fixtures by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps fixtures whose file name matches pattern.
// Supports patterns like "*.wexpr" or "*array*"; a pattern without
// wildcards is a substring match. Discovery order is preserved.
func (f *Filter) FilterByName(fixtures []domain.Fixture, pattern string) []domain.Fixture {
	if pattern == "" {
		return fixtures
	}

	var filtered []domain.Fixture
	for _, fixture := range fixtures {
		if matchName(filepath.Base(fixture.Path), pattern) {
			filtered = append(filtered, fixture)
		}
	}

	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match is anchored; fall back to matching each literal
	// part of a "*" pattern as a substring
	if !strings.Contains(pattern, "*") {
		return false
	}
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		hasPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasPart
}
