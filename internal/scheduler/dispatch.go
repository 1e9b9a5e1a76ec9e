// Package scheduler runs the jobs CI triggers on a schedule. Jobs shell out
// to build tools through a StepRunner so they can be exercised with a fake.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"wct/internal/execution"
)

// StepRunner runs one shell command line
type StepRunner interface {
	Run(ctx context.Context, line string) execution.Outcome
}

// StepError reports the step that aborted a job
type StepError struct {
	Message string
	Command string
	Outcome execution.Outcome
}

func (e *StepError) Error() string {
	if e.Outcome.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Outcome.Err)
	}
	return fmt.Sprintf("%s (exit %d)", e.Message, e.Outcome.ExitCode)
}

// Handler runs one job
type Handler func(ctx context.Context, cfg Config, steps *Steps) error

var handlers = map[JobName]Handler{
	JobBuildDocset: buildDocset,
}

// Jobs lists the known job names
func Jobs() []JobName {
	return []JobName{JobBuildDocset}
}

// Dispatch runs the handler for cfg.Job
func Dispatch(ctx context.Context, cfg Config, runner StepRunner, out io.Writer) error {
	handler, ok := handlers[cfg.Job]
	if !ok {
		return fmt.Errorf("unknown scheduler job %q - doing nothing (valid: %v)", cfg.Job, Jobs())
	}
	return handler(ctx, cfg, &Steps{runner: runner, out: out})
}

// Steps runs command lines in order, echoing each one
type Steps struct {
	runner StepRunner
	out    io.Writer
}

// Run executes line and fails with message when it does not exit 0.
// The trimmed output is returned for steps whose result is needed.
func (s *Steps) Run(ctx context.Context, message, line string) (string, error) {
	color.New(color.FgCyan).Fprintf(s.out, "> -------- %s\n", line)
	outcome := s.runner.Run(ctx, line)
	color.New(color.FgCyan).Fprintf(s.out, "< -------- %s\n", line)

	if !outcome.Succeeded() {
		return "", &StepError{Message: message, Command: line, Outcome: outcome}
	}
	return strings.TrimSpace(string(outcome.Output)), nil
}
