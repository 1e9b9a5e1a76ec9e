package execution

import (
	"context"
	"time"

	"wct/internal/domain"
)

// Runner validates a single fixture with the command template
type Runner struct {
	executor Executor
	template *Template
	timeout  time.Duration
}

// NewRunner creates a new Runner. A zero timeout waits for the validator indefinitely.
func NewRunner(executor Executor, template *Template, timeout time.Duration) *Runner {
	return &Runner{
		executor: executor,
		template: template,
		timeout:  timeout,
	}
}

// Run executes the validator for one fixture
func (r *Runner) Run(ctx context.Context, fixture domain.Fixture) domain.TestResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	outcome := r.executor.Execute(ctx, r.template.Expand(fixture.Path))

	return domain.TestResult{
		Fixture:   fixture,
		Succeeded: outcome.Succeeded(),
		ExitCode:  outcome.ExitCode,
		Output:    string(outcome.Output),
		Error:     outcome.Err,
		Duration:  time.Since(start),
	}
}
