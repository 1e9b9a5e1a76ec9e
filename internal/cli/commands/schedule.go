package commands

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/execution"
	"wct/internal/scheduler"

	"github.com/spf13/cobra"
)

// ScheduleCommand handles the schedule command
type ScheduleCommand struct {
	config   *config.Config
	executor execution.Executor
	getenv   func(string) string
	now      func() time.Time
}

// NewScheduleCommand creates a new ScheduleCommand
func NewScheduleCommand(cfg *config.Config, executor execution.Executor) *ScheduleCommand {
	return &ScheduleCommand{
		config:   cfg,
		executor: executor,
		getenv:   os.Getenv,
		now:      time.Now,
	}
}

// Execute runs the command
func (sc *ScheduleCommand) Execute(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(sc.config.Flags.RootDir)
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "invalid root directory", err)
	}

	schedCfg := scheduler.ConfigFromEnv(sc.getenv, root, sc.now())
	if sc.config.Flags.Job != "" {
		schedCfg.Job = scheduler.JobName(sc.config.Flags.Job)
	}

	var runner scheduler.StepRunner = execution.ShellExecutor{Executor: sc.executor}
	if sc.config.Flags.DryRun {
		runner = dryRunner{}
	}

	if err := scheduler.Dispatch(cmd.Context(), schedCfg, runner, cmd.OutOrStdout()); err != nil {
		return cli.WrapExitError(cli.ExitFailure, "scheduler job failed", err)
	}
	return nil
}

// dryRunner succeeds without running anything. Steps whose output is used
// later get a placeholder so the remaining command lines stay readable.
type dryRunner struct{}

func (dryRunner) Run(ctx context.Context, line string) execution.Outcome {
	return execution.Outcome{Output: []byte("$BUILD_PATH")}
}
