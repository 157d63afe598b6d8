package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/plan"
	"github.com/mhoutman/romsort/pkg/scan"
)

// ApplyFlags holds apply command flags
type ApplyFlags struct {
	runFlags
	DryRun      bool
	OlderAction string
}

var applyFlags ApplyFlags

// NewApplyCommand creates the apply command
func NewApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <directory>",
		Short: "Clean up a ROM directory",
		Long: `Scan a ROM directory, build the action plan and carry it out.
Duplicates and older revisions are staged into managed folders inside
the directory; nothing is ever deleted from disk. Use --dry-run to
preview the exact moves without touching anything.`,
		Args: cobra.ExactArgs(1),
		RunE: runApply,
	}

	addRunFlags(cmd, &applyFlags.runFlags)
	cmd.Flags().BoolVar(&applyFlags.DryRun, "dry-run", false, "show the moves without making them")
	cmd.Flags().StringVar(&applyFlags.OlderAction, "older-action", "", "what to do with older revisions: delete, review, keep")

	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&applyFlags.runFlags)
	if err != nil {
		return err
	}
	if applyFlags.OlderAction != "" {
		action := models.OlderVersionAction(applyFlags.OlderAction)
		if !action.Valid() {
			return fmt.Errorf("invalid --older-action: %s (use: delete, review, keep)", applyFlags.OlderAction)
		}
		cfg.Versions.OlderAction = action
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
	p.DryRun = applyFlags.DryRun

	formatter := newFormatter(cfg, os.Stdout)
	if err := formatter.PlanSummary(p); err != nil {
		return err
	}
	if err := formatter.ExecutionStart(p.Stats.Moves, applyFlags.DryRun); err != nil {
		return err
	}

	executor := plan.NewExecutor(cfg, logger)
	executor.OnMove = func(res models.MoveResult) {
		formatter.MoveResult(res)
	}

	report, execErr := executor.Execute(ctx, p, applyFlags.DryRun)
	if err := formatter.Complete(report); err != nil {
		return err
	}
	if execErr != nil && report.Status != models.StatusPartial {
		logger.Error(ctx, "apply aborted", execErr, logging.Fields{"root": root})
	}

	recordRun(ctx, cfg, logger, report)

	os.Exit(report.Status.ExitCode())
	return nil
}

// recordRun stores the report in the run catalog. Catalog trouble never
// fails the run itself.
func recordRun(ctx context.Context, cfg *config.Config, logger logging.Logger, report *models.Report) {
	store, err := openCatalog(cfg)
	if err != nil {
		logger.Warn(ctx, "catalog unavailable", logging.Fields{"error": err.Error()})
		return
	}
	if store == nil {
		return
	}
	defer store.Close()

	if err := store.RecordRun(ctx, report); err != nil {
		logger.Warn(ctx, "failed to record run", logging.Fields{"error": err.Error()})
	}
}
