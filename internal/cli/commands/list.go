package commands

import (
	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/discovery"
	"wct/internal/storage"
	"wct/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
	filter *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, filter *discovery.Filter) *ListCommand {
	return &ListCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fixtures, err := discovery.NewScanner(lc.config.Extension).Scan(lc.config.BaseDir)
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "cannot enumerate fixtures", err)
	}
	fixtures = lc.filter.FilterByName(fixtures, lc.config.Flags.NameFilter)

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No fixtures found")
		return nil
	}

	// Mark mismatches from the last saved run, if one was given
	var failed map[string]struct{}
	if path := lc.config.GetResultsPath(); path != "" {
		record, err := storage.NewJSONStorage(path).Load()
		if err != nil {
			return err
		}
		failed = make(map[string]struct{})
		for _, m := range record.Mismatches() {
			failed[m.Name] = struct{}{}
		}
	}

	ui.NewReporter(out, false).PrintFixtureList(fixtures, failed)
	return nil
}
