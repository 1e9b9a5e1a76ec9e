package execution

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"wct/internal/domain"
)

// Outcome is what an Executor observed for one command
type Outcome struct {
	ExitCode int    // -1 when the process did not exit normally
	Output   []byte // Combined stdout and stderr
	Err      error  // Set for launch failures, signals and timeouts
}

// Succeeded reports whether the command exited normally with status 0
func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.ExitCode == 0
}

// Executor runs an external command and captures its result
type Executor interface {
	Execute(ctx context.Context, argv []string) Outcome
}

// ProcessExecutor runs commands as child processes. The child inherits the
// current environment and working directory.
type ProcessExecutor struct{}

// NewProcessExecutor creates a ProcessExecutor
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{}
}

// waitDelay bounds how long output is collected after the child is killed,
// in case it left descendants holding the pipes open
const waitDelay = 2 * time.Second

// Execute runs argv[0] with the remaining arguments and blocks until it exits
func (e *ProcessExecutor) Execute(ctx context.Context, argv []string) Outcome {
	if len(argv) == 0 {
		return Outcome{ExitCode: -1, Err: fmt.Errorf("%w: empty command", domain.ErrAbnormalTermination)}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitDelay

	output, err := cmd.CombinedOutput()
	if err == nil {
		return Outcome{ExitCode: 0, Output: output}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{ExitCode: -1, Output: output, Err: fmt.Errorf("%w: %v", domain.ErrAbnormalTermination, ctxErr)}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return Outcome{ExitCode: exitErr.ExitCode(), Output: output}
	}

	return Outcome{ExitCode: -1, Output: output, Err: fmt.Errorf("%w: %v", domain.ErrAbnormalTermination, err)}
}

// ShellExecutor adapts an Executor to run shell command lines through sh -c
type ShellExecutor struct {
	Executor Executor
}

// Run executes a shell command line
func (s ShellExecutor) Run(ctx context.Context, line string) Outcome {
	return s.Executor.Execute(ctx, []string{"sh", "-c", line})
}
