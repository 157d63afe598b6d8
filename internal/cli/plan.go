package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/plan"
	"github.com/mhoutman/romsort/pkg/scan"
)

var planRunFlags runFlags

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <directory>",
		Short: "Build and show the action plan for a ROM directory",
		Long: `Scan a ROM directory and print every move the cleanup would make,
with the reason for each decision. Nothing is moved; run apply to
carry the plan out.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}

	addRunFlags(cmd, &planRunFlags)
	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&planRunFlags)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	listing, err := scan.NewScanner(cfg, logger).Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	p := plan.NewBuilder(cfg, logger).Build(ctx, listing)
	p.DryRun = true
	logger.Info(ctx, "plan built", logging.Fields{
		"root":  root,
		"moves": p.Stats.Moves,
	})

	return newFormatter(cfg, os.Stdout).PlanSummary(p)
}
