package commands

import (
	"wct/internal/cli"
	"wct/internal/config"
	"wct/internal/discovery"
	"wct/internal/execution"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Validate *ValidateCommand
	Schedule *ScheduleCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies. Every subprocess the
// commands start goes through executor.
func NewCommands(cfg *config.Config, executor execution.Executor) *Commands {
	filter := discovery.NewFilter()

	return &Commands{
		Run:      NewRunCommand(cfg, filter, executor),
		List:     NewListCommand(cfg, filter),
		Validate: NewValidateCommand(cfg),
		Schedule: NewScheduleCommand(cfg, executor),
		Failures: NewFailuresCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [flags] <command> [args...]",
		Short: "Run a validator against the success/ and fail/ fixtures",
		Long: `Run the validator command once per fixture, substituting the fixture path for {}.
Fixtures under success/ are expected to be accepted (exit 0), fixtures under fail/
are expected to be rejected (non-zero exit).`,
		Example: `  wct run WexprTool -c validate -i {}
  wct run --dir ImplementationTests --displayOutput node WexprValidate.js {}
  wct run --strict --timeout 10s -- ./validator --input={}`,
		Args:    cobra.ArbitraryArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	// Everything after the command name belongs to the validator
	runCmd.Flags().SetInterspersed(false)
	addFixtureFlags(runCmd, flags, cfg)
	runCmd.Flags().BoolVar(&flags.DisplayOutput, "displayOutput", false, "Print each fixture's captured validator output")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
	runCmd.Flags().BoolVar(&flags.Strict, "strict", cfg.Strict, "Exit non-zero when any fixture does not meet its expectation")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", cfg.Timeout, "Per-fixture timeout (0 disables)")
	runCmd.Flags().StringVarP(&flags.ResultsFile, "results", "r", "", "Write the run to this JSON file")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered fixtures",
		Long:    "Scan and list the fixtures and their expected outcome without running anything",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	addFixtureFlags(listCmd, flags, cfg)
	listCmd.Flags().StringVarP(&flags.ResultsFile, "results", "r", "", "Mark fixtures that mismatched in this results file")
	rootCmd.AddCommand(listCmd)

	// Validate command
	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode one file and exit 0 if it is valid",
		Long: `Read a file and decode it. Exits 0 when decoding succeeds, 1 otherwise
(including unreadable files and decoder crashes). Usable as the validator for run.`,
		Example: "  wct run wct validate --format json {}",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Validate.Execute,
		PreRunE: applyFlags,
	}
	validateCmd.Flags().StringVar(&flags.Format, "format", DefaultFormat, "Decoder to use (cue|json|yaml)")
	validateCmd.Flags().StringVar(&flags.SchemaFile, "schema", "", "JSON Schema the decoded value must satisfy")
	rootCmd.AddCommand(validateCmd)

	// Schedule command
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run a scheduled CI job",
		Long: `Run the job named by --job or $SCHEDULER_JOB (valid: build_docset).
hguild settings are read from HGUILD, HGUILD_PROFILE, HGUILD_BUILDTYPE,
HGUILD_PROJECT_NAME and HGUILD_SOURCENAME.`,
		Args:    cobra.NoArgs,
		RunE:    c.Schedule.Execute,
		PreRunE: applyFlags,
	}
	scheduleCmd.Flags().StringVar(&flags.Job, "job", "", "Job to run (overrides $SCHEDULER_JOB)")
	scheduleCmd.Flags().StringVar(&flags.RootDir, "root", ".", "Project root directory")
	scheduleCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the steps without running them")
	rootCmd.AddCommand(scheduleCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View mismatches of a saved run",
		Long:    "Display the fixtures that did not meet their expectation in a saved run, interactively or as a table",
		Args:    cobra.NoArgs,
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.ResultsFile, "results", "r", "", "Results file written by run --results")
	failuresCmd.Flags().BoolVar(&flags.Stats, "stats", false, "Print a statistics table instead of opening the viewer")
	rootCmd.AddCommand(failuresCmd)
}

func addFixtureFlags(cmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	cmd.Flags().StringVarP(&flags.BaseDir, "dir", "d", cfg.BaseDir, "Directory containing the success/ and fail/ fixture folders")
	cmd.Flags().StringVarP(&flags.Extension, "ext", "e", cfg.Extension, "Fixture file extension (empty matches every file)")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter fixtures by name pattern (supports wildcards, e.g. '*array*')")
}
