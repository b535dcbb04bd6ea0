package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statkit",
		Short: "Statkit - descriptive statistics for integer datasets",
		Long: `Statkit computes descriptive statistics over a dataset of integers.

It reports the mean, median, mode, range, population variance and standard
deviation, either in a single shot from the command line or through an
interactive prompt.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newComputeCommand())
	cmd.AddCommand(newPromptCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
