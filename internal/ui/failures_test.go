package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wct/internal/domain"
	"wct/internal/storage"
)

func TestFormatMismatchDetails(t *testing.T) {
	rec := domain.ResultRecord{
		Name:    "fail/b.wexpr",
		Path:    "/fixtures/fail/b.wexpr",
		Output:  "Error: [1] unexpected token\n",
		Error:   "",
		Seconds: 0.25,
	}

	out := formatMismatchDetails(rec)
	assert.Contains(t, out, "[red]✗ fail/b.wexpr[white]")
	assert.Contains(t, out, "Path: /fixtures/fail/b.wexpr")
	assert.Contains(t, out, "Duration: 0.250s")
	// tview tags in captured output are escaped
	assert.Contains(t, out, "Error: [1[] unexpected token")
	assert.NotContains(t, out, "(no output)")

	rec.Output = ""
	rec.Error = "subprocess terminated abnormally"
	out = formatMismatchDetails(rec)
	assert.Contains(t, out, "(no output)")
	assert.Contains(t, out, "subprocess terminated abnormally")
}

func TestFormatMismatchStats(t *testing.T) {
	out := formatMismatchStats(domain.ResultRecord{Name: "fail/b.wexpr", Actual: true, Expected: false, ExitCode: 0})
	assert.Contains(t, out, "fail/b.wexpr")
	assert.Contains(t, out, "[cyan]got[white] true [cyan]expected[white] false [cyan]exit[white] 0")
}

func TestFailureViewer_NoMismatches(t *testing.T) {
	fv := NewFailureViewer(nil)
	err := fv.View(&domain.RunRecord{Results: []domain.ResultRecord{{Name: "success/a.wexpr", Verdict: true}}})
	assert.NoError(t, err)
}

func TestToggleResolved(t *testing.T) {
	newRecord := func() *domain.RunRecord {
		return &domain.RunRecord{Results: []domain.ResultRecord{
			{Name: "success/a.wexpr", Verdict: true},
			{Name: "fail/b.wexpr", Actual: true, Verdict: false},
		}}
	}

	t.Run("saved", func(t *testing.T) {
		st := storage.NewJSONStorage(filepath.Join(t.TempDir(), "results.json"))
		record := newRecord()

		require.NoError(t, toggleResolved(st, record, 1))

		loaded, err := st.Load()
		require.NoError(t, err)
		assert.True(t, loaded.Results[1].Resolved)
		assert.False(t, loaded.Results[0].Resolved)
	})

	t.Run("save failure is reported", func(t *testing.T) {
		record := newRecord()

		err := toggleResolved(storage.NewJSONStorage(""), record, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save resolved status")
		assert.True(t, record.Results[1].Resolved)
	})
}

func TestFormatHeader(t *testing.T) {
	assert.Contains(t, formatHeader(3, 2, nil), "Mismatches (3 total, 2 unresolved)")
	assert.Contains(t, formatHeader(3, 2, nil), "mark resolved")

	header := formatHeader(3, 1, errors.New("write results: permission denied [x]"))
	assert.Contains(t, header, "[red]write results: permission denied [x[]")
	assert.NotContains(t, header, "mark resolved")
}
