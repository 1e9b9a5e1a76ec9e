package execution

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
)

// fakeExecutor decides each outcome from the last argument, which is the
// fixture path in every template the tests use
type fakeExecutor struct {
	mu     sync.Mutex
	calls  [][]string
	accept func(path string) bool
	output string
}

func (f *fakeExecutor) Execute(ctx context.Context, argv []string) Outcome {
	f.mu.Lock()
	f.calls = append(f.calls, argv)
	f.mu.Unlock()

	path := argv[len(argv)-1]
	if f.accept(path) {
		return Outcome{ExitCode: 0, Output: []byte(f.output)}
	}
	return Outcome{ExitCode: 1, Output: []byte(f.output)}
}

// acceptDir accepts fixtures living in the named class directory
func acceptDir(dir string) func(string) bool {
	return func(path string) bool {
		return filepath.Base(filepath.Dir(path)) == dir
	}
}

func acceptContaining(s string) func(string) bool {
	return func(path string) bool {
		return strings.Contains(filepath.Base(path), s)
	}
}
