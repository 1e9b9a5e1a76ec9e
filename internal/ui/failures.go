package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"wct/internal/domain"
	"wct/internal/storage"
)

// FailureViewer displays the mismatches of a persisted run in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer. Resolved marks are written
// back through st.
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the mismatches of record
func (fv *FailureViewer) View(record *domain.RunRecord) error {
	// Indexes into record.Results of every mismatch, in run order
	var indexes []int
	for i, r := range record.Results {
		if !r.Verdict {
			indexes = append(indexes, i)
		}
	}

	if len(indexes) == 0 {
		color.Green("✓ No mismatches found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(n int) string {
		rec := record.Results[indexes[n]]
		if rec.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", n+1, tview.Escape(rec.Name))
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", n+1, tview.Escape(rec.Name))
	}

	for n := range indexes {
		list.AddItem(listItemText(n), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		unresolved := 0
		for _, i := range indexes {
			if !record.Results[i].Resolved {
				unresolved++
			}
		}
		headerView.SetText(formatHeader(len(indexes), unresolved, saveErr))
	}

	updateDetails := func() {
		n := list.GetCurrentItem()
		if n < 0 || n >= len(indexes) {
			return
		}
		rec := record.Results[indexes[n]]
		statsView.SetText(formatMismatchStats(rec))
		detailsView.SetText(formatMismatchDetails(rec))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				n := list.GetCurrentItem()
				if n >= 0 && n < len(indexes) {
					saveErr = toggleResolved(fv.storage, record, indexes[n])
					list.SetItemText(n, listItemText(n), "")
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// toggleResolved flips the resolved mark of record.Results[i] and writes the
// record back. The in-memory mark is kept when saving fails.
func toggleResolved(st storage.Storage, record *domain.RunRecord, i int) error {
	record.Results[i].Resolved = !record.Results[i].Resolved
	if err := st.Save(record); err != nil {
		return fmt.Errorf("failed to save resolved status: %w", err)
	}
	return nil
}

// formatHeader formats the viewer title bar, replacing the key help with
// the last save error if there is one
func formatHeader(total, unresolved int, saveErr error) string {
	if saveErr != nil {
		return fmt.Sprintf(" Mismatches (%d total, %d unresolved) | [red]%s[white] ", total, unresolved, tview.Escape(saveErr.Error()))
	}
	return fmt.Sprintf(" Mismatches (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ", total, unresolved)
}

// formatMismatchStats formats the header line for one mismatch
func formatMismatchStats(rec domain.ResultRecord) string {
	return fmt.Sprintf("[cyan]fixture:[white] [yellow]%s[white]\n[cyan]got[white] %t [cyan]expected[white] %t [cyan]exit[white] %d",
		tview.Escape(rec.Name), rec.Actual, rec.Expected, rec.ExitCode)
}

// formatMismatchDetails formats the captured output of one mismatch using tview color tags
func formatMismatchDetails(rec domain.ResultRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(rec.Name))
	fmt.Fprintf(&b, "[cyan]Path: %s[white]\n", tview.Escape(rec.Path))
	fmt.Fprintf(&b, "[cyan]Duration: %.3fs[white]\n\n", rec.Seconds)

	if rec.Error != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n\n", tview.Escape(rec.Error))
	}

	if rec.Output == "" {
		b.WriteString("[gray](no output)[white]\n")
	} else {
		fmt.Fprintf(&b, "[yellow]Output:[white]\n%s", tview.Escape(rec.Output))
	}

	return b.String()
}
