package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wct/internal/cli"
	"wct/internal/cli/commands"
	"wct/internal/config"
	"wct/internal/execution"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Variables from .env act as defaults; the real environment wins
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", config.DefaultEnvFile, err)
		return cli.ExitFailure
	}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "wct",
		Short: "Wexpr conformance tester",
		Long: `Run a validator against fixture files whose expected outcome is given by the
directory they live in (success/ or fail/), and report how many met their expectation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, execution.NewProcessExecutor())

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", msg)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
