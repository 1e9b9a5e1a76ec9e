package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wct/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// Reporter prints per-fixture progress lines, mismatches and the run summary
type Reporter struct {
	out           io.Writer
	displayOutput bool
}

// NewReporter creates a new Reporter writing to out. With displayOutput set,
// each fixture's captured validator output is echoed whatever its verdict.
func NewReporter(out io.Writer, displayOutput bool) *Reporter {
	return &Reporter{out: out, displayOutput: displayOutput}
}

// Header prints the command being run and the number of fixtures
func (r *Reporter) Header(command string, count int) {
	cyan.Fprintf(r.out, "Running %d fixture(s) with: %s\n", count, command)
}

// FixtureStarted prints the numbered fixture line
func (r *Reporter) FixtureStarted(index int, fixture domain.Fixture) {
	fmt.Fprintf(r.out, "%d) %s...\n", index+1, fixture.Name)
}

// FixtureFinished prints captured output when requested and a diagnostic
// line when the verdict is false
func (r *Reporter) FixtureFinished(index int, result domain.TestResult, summary domain.RunSummary) {
	if r.displayOutput && result.Output != "" {
		fmt.Fprint(r.out, result.Output)
		if !strings.HasSuffix(result.Output, "\n") {
			fmt.Fprintln(r.out)
		}
	}

	if result.Verdict() {
		return
	}

	fmt.Fprintln(r.out)
	red.Fprintf(r.out, "!!! FAIL: %s : got %t but expected %t\n", result.Fixture.Name, result.Succeeded, result.Fixture.Expect.Succeeds())
	if result.Error != nil {
		yellow.Fprintf(r.out, "    %v\n", result.Error)
	}
	fmt.Fprintln(r.out)
}

// Summary prints the final pass/fail counts and integer percentages
func (r *Reporter) Summary(summary domain.RunSummary) {
	fmt.Fprintln(r.out, "---")
	if summary.Empty() {
		yellow.Fprintln(r.out, "No fixtures found")
	}

	passLine := fmt.Sprintf("Pass: %d (%d%%)", summary.Passed, summary.PassedPercent())
	failLine := fmt.Sprintf("Fail: %d (%d%%)", summary.Failed, summary.FailedPercent())
	if summary.Failed == 0 {
		green.Fprintln(r.out, passLine)
		fmt.Fprintln(r.out, failLine)
	} else {
		fmt.Fprintln(r.out, passLine)
		red.Fprintln(r.out, failLine)
	}
	fmt.Fprintf(r.out, "Total: %d\n", summary.Total)
}

// PrintRecordStats prints the statistics table of a persisted run
func (r *Reporter) PrintRecordStats(record *domain.RunRecord) {
	meta := record.Meta

	cyan.Fprintln(r.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(r.out, "║                  Conformance Run Statistics                   ║")
	cyan.Fprintln(r.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(r.out)

	const rule = "├─────────────────────────────────┼─────────────────────────────┤"
	fmt.Fprintln(r.out, "┌─────────────────────────────────┬─────────────────────────────┐")

	row := func(c *color.Color, label, value string, last bool) {
		fmt.Fprintf(r.out, "│ %-31s │ ", label)
		c.Fprintf(r.out, "%-27s", value)
		fmt.Fprintln(r.out, " │")
		if !last {
			fmt.Fprintln(r.out, rule)
		}
	}

	white := color.New(color.Reset)
	row(white, "Command", truncate(strings.Join(meta.Command, " "), 27), false)
	row(white, "Total Fixtures", fmt.Sprint(meta.Total), false)
	row(green, "Passed", fmt.Sprintf("%d (%d%%)", meta.Passed, meta.PassedPercent), false)
	row(red, "Failed", fmt.Sprintf("%d (%d%%)", meta.Failed, meta.FailedPercent), false)
	row(white, "Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), false)
	row(white, "Timestamp", meta.Timestamp, true)

	fmt.Fprintln(r.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(r.out)

	mismatches := record.Mismatches()
	if len(mismatches) == 0 {
		green.Fprintln(r.out, "✓ All fixtures met their expectation!")
		return
	}

	red.Fprintf(r.out, "✗ %d fixture(s) did not meet their expectation\n", len(mismatches))
	for i, m := range mismatches {
		connector := "├──"
		if i == len(mismatches)-1 {
			connector = "└──"
		}
		fmt.Fprintf(r.out, "%s ", connector)
		yellow.Fprint(r.out, m.Name)
		fmt.Fprintf(r.out, " got %t but expected %t\n", m.Actual, m.Expected)
	}
}

// PrintFixtureList prints discovered fixtures grouped by expectation.
// Names in failed are marked with [F] (mismatches from the last persisted run).
func (r *Reporter) PrintFixtureList(fixtures []domain.Fixture, failed map[string]struct{}) {
	green.Fprintf(r.out, "Found %d fixture(s):\n", len(fixtures))

	for _, expect := range []domain.Expectation{domain.ExpectSuccess, domain.ExpectFailure} {
		var group []domain.Fixture
		for _, f := range fixtures {
			if f.Expect == expect {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintln(r.out)
		cyan.Fprintf(r.out, "%s/ (expect %s, %d)\n", expect.Dir(), expect, len(group))
		for i, f := range group {
			connector := "├──"
			if i == len(group)-1 {
				connector = "└──"
			}
			marker := ""
			if _, ok := failed[f.Name]; ok {
				marker = " " + red.Sprint("[F]")
			}
			fmt.Fprintf(r.out, "%s %s%s\n", connector, strings.TrimPrefix(f.Name, expect.Dir()+"/"), marker)
		}
	}
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
