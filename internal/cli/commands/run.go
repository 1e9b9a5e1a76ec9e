package commands

import (
	"fmt"
	"time"

	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/discovery"
	"wct/internal/domain"
	"wct/internal/execution"
	"wct/internal/storage"
	"wct/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	filter   *discovery.Filter
	executor execution.Executor
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, filter *discovery.Filter, executor execution.Executor) *RunCommand {
	return &RunCommand{
		config:   cfg,
		filter:   filter,
		executor: executor,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	tokens, displayOutput := splitDisplayOutput(args)
	displayOutput = displayOutput || rc.config.Flags.DisplayOutput

	tmpl, err := execution.ParseTemplate(tokens)
	if err != nil {
		warn := color.New(color.FgYellow)
		warn.Fprintf(out, ">> Pass the command to run with %s for where to put input files\n", config.Placeholder)
		warn.Fprintf(out, ">> for example: %s run WexprTool -c validate -i %s\n", cmd.Root().Name(), config.Placeholder)
		return cli.WrapExitError(cli.ExitFailure, "invalid command", err)
	}

	// Discover fixtures
	fixtures, err := discovery.NewScanner(rc.config.Extension).Scan(rc.config.BaseDir)
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "cannot enumerate fixtures", err)
	}
	fixtures = rc.filter.FilterByName(fixtures, rc.config.Flags.NameFilter)

	reporter := ui.NewReporter(out, displayOutput)
	harness := execution.NewHarness(execution.NewRunner(rc.executor, tmpl, rc.config.Timeout), reporter)

	var progress *ui.ProgressBar
	if rc.config.Flags.Progress && len(fixtures) > 0 {
		progress = ui.NewProgressBar(cmd.ErrOrStderr(), len(fixtures))
		harness.AddObserver(progress)
	}

	reporter.Header(tmpl.String(), len(fixtures))
	results, summary, duration, runErr := harness.Execute(cmd.Context(), fixtures)
	if progress != nil {
		progress.Finish()
	}
	reporter.Summary(summary)

	if path := rc.config.GetResultsPath(); path != "" {
		record := domain.NewRunRecord(tmpl.Tokens(), rc.config.BaseDir, results, summary, duration, time.Now())
		if err := storage.NewJSONStorage(path).Save(record); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("run interrupted after %d fixture(s): %w", len(results), runErr)
	}

	if rc.config.Strict && summary.Failed > 0 {
		return cli.NewExitError(cli.ExitFailure, fmt.Sprintf("%d fixture(s) did not meet their expectation", summary.Failed))
	}

	return nil
}

// splitDisplayOutput removes --displayOutput tokens from the command, which
// the runner accepts anywhere on its command line
func splitDisplayOutput(args []string) ([]string, bool) {
	tokens := make([]string, 0, len(args))
	found := false
	for _, a := range args {
		if a == config.DisplayOutputToken {
			found = true
			continue
		}
		tokens = append(tokens, a)
	}
	return tokens, found
}
