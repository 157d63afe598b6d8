package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "romsort",
		Short: "ROM collection cleanup utility",
		Long: `romsort classifies a ROM collection by filename, groups releases of
the same game, and stages duplicates, off-region releases, betas and
older revisions into managed folders. Nothing is ever deleted from
disk; every decision comes from filenames alone and can be previewed
with a dry run.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewScanCommand())
	rootCmd.AddCommand(cli.NewPlanCommand())
	rootCmd.AddCommand(cli.NewApplyCommand())
	rootCmd.AddCommand(cli.NewHistoryCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(version, commit, date))

	return rootCmd.Execute()
}
