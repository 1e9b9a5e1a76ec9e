package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"wct/internal/domain"
)

// ProgressBar renders run progress with live pass/fail counts
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for count fixtures, drawn on w
func NewProgressBar(w io.Writer, count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(passed, failed int) string {
	return color.CyanString("Running fixtures: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

// FixtureStarted is a no-op; the bar advances when a fixture finishes
func (p *ProgressBar) FixtureStarted(int, domain.Fixture) {}

// FixtureFinished updates the bar with the running summary
func (p *ProgressBar) FixtureFinished(_ int, _ domain.TestResult, summary domain.RunSummary) {
	p.Update(summary.Passed, summary.Failed)
}

// Update updates the progress bar with passed and failed counts
func (p *ProgressBar) Update(passed, failed int) {
	p.bar.Set(passed + failed)
	p.bar.Describe(describe(passed, failed))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
