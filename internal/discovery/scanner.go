package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wct/internal/domain"
)

// Scanner enumerates fixtures under a base directory
type Scanner struct {
	extension string
}

// NewScanner creates a new Scanner matching files with the given extension.
// An empty extension matches every regular file.
func NewScanner(extension string) *Scanner {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Scanner{extension: extension}
}

// Scan finds all fixtures in root/success and root/fail. Fixtures under
// success/ come first, each directory sorted by file name.
func (s *Scanner) Scan(root string) ([]domain.Fixture, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.FixtureIOError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.FixtureIOError{Path: root, Err: fmt.Errorf("fixture path is not a directory")}
	}

	var fixtures []domain.Fixture
	for _, expect := range []domain.Expectation{domain.ExpectSuccess, domain.ExpectFailure} {
		found, err := s.scanDir(root, expect)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, found...)
	}

	return fixtures, nil
}

func (s *Scanner) scanDir(root string, expect domain.Expectation) ([]domain.Fixture, error) {
	dir := filepath.Join(root, expect.Dir())

	// os.ReadDir returns entries sorted by file name
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.FixtureIOError{Path: dir, Err: err}
	}

	var fixtures []domain.Fixture
	for _, entry := range entries {
		name := entry.Name()
		// Skip hidden files and nested directories
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if s.extension != "" && filepath.Ext(name) != s.extension {
			continue
		}

		fixtures = append(fixtures, domain.Fixture{
			Path:   filepath.Join(dir, name),
			Name:   expect.Dir() + "/" + name,
			Expect: expect,
		})
	}

	return fixtures, nil
}
