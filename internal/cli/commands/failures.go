package commands

import (
	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/storage"
	"wct/internal/ui"

	"github.com/spf13/cobra"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config *config.Config
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config) *FailuresCommand {
	return &FailuresCommand{config: cfg}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	path := fc.config.GetResultsPath()
	if path == "" {
		return cli.NewExitError(cli.ExitFailure, "no results file given, pass --results <file> written by run --results")
	}

	st := storage.NewJSONStorage(path)
	record, err := st.Load()
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "cannot load results", err)
	}

	if fc.config.Flags.Stats {
		ui.NewReporter(cmd.OutOrStdout(), false).PrintRecordStats(record)
		return nil
	}

	var viewer ui.Viewer = ui.NewFailureViewer(st)
	return viewer.View(record)
}
