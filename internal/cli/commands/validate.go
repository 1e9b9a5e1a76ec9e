package commands

import (
	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/validate"

	"github.com/spf13/cobra"
)

// DefaultFormat is the decoder used by validate when --format is not given
const DefaultFormat = "yaml"

// ValidateCommand handles the validate command
type ValidateCommand struct {
	config *config.Config
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(cfg *config.Config) *ValidateCommand {
	return &ValidateCommand{config: cfg}
}

// Execute runs the command. The exit code is the only result the runner
// looks at, so an invalid file returns an ExitError without a message.
func (vc *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	path := args[0]

	dec, err := validate.NewDecoder(vc.config.Flags.Format, path)
	if err != nil {
		return cli.WrapExitError(cli.ExitFailure, "invalid format", err)
	}
	if schema := vc.config.Flags.SchemaFile; schema != "" {
		dec, err = validate.NewSchemaDecoder(dec, schema)
		if err != nil {
			return cli.WrapExitError(cli.ExitFailure, "invalid schema", err)
		}
	}

	if code := validate.File(path, dec, cmd.OutOrStdout()); code != validate.ExitValid {
		return &cli.ExitError{Code: code}
	}
	return nil
}
