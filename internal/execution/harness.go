package execution

import (
	"context"
	"time"

	"wct/internal/domain"
)

// Observer is notified as fixtures are run
type Observer interface {
	FixtureStarted(index int, fixture domain.Fixture)
	FixtureFinished(index int, result domain.TestResult, summary domain.RunSummary)
}

// Harness runs fixtures one at a time, in discovery order
type Harness struct {
	runner    *Runner
	observers []Observer
}

// NewHarness creates a new Harness
func NewHarness(runner *Runner, observers ...Observer) *Harness {
	return &Harness{runner: runner, observers: observers}
}

// AddObserver registers an observer for subsequent runs
func (h *Harness) AddObserver(o Observer) {
	h.observers = append(h.observers, o)
}

// Execute runs every fixture and accumulates the summary. Individual
// fixture outcomes never abort the run; only a cancelled context does,
// in which case the results completed so far are returned with ctx.Err().
// The fixture that was running when the context ended is not recorded.
func (h *Harness) Execute(ctx context.Context, fixtures []domain.Fixture) ([]domain.TestResult, domain.RunSummary, time.Duration, error) {
	var summary domain.RunSummary
	results := make([]domain.TestResult, 0, len(fixtures))
	startTime := time.Now()

	for i, fixture := range fixtures {
		if err := ctx.Err(); err != nil {
			return results, summary, time.Since(startTime), err
		}

		for _, o := range h.observers {
			o.FixtureStarted(i, fixture)
		}

		result := h.runner.Run(ctx, fixture)
		// A validator killed by cancellation never judged its fixture
		if err := ctx.Err(); err != nil {
			return results, summary, time.Since(startTime), err
		}
		summary.Add(result)
		results = append(results, result)

		for _, o := range h.observers {
			o.FixtureFinished(i, result, summary)
		}
	}

	return results, summary, time.Since(startTime), nil
}
