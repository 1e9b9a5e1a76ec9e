// Package testutil lays out fixture trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// WriteArchive materializes a txtar archive into a fresh temporary directory
// and returns its path. File names in the archive are slash-separated and
// relative to the returned directory.
func WriteArchive(tb testing.TB, archive string) string {
	tb.Helper()

	root := tb.TempDir()
	ar := txtar.Parse([]byte(archive))
	for _, f := range ar.Files {
		path := filepath.Join(root, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			tb.Fatalf("failed to create dir for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			tb.Fatalf("failed to write %s: %v", f.Name, err)
		}
	}
	return root
}
