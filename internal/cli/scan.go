package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/plan"
	"github.com/mhoutman/romsort/pkg/scan"
)

var scanRunFlags runFlags

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a ROM directory and show classification statistics",
		Long: `Scan a ROM directory, classify every file and folder game by its
filename tags, and print what was found: entries per region, detected
folder games, paired save files and unrecognized tags. Nothing is moved.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	addRunFlags(cmd, &scanRunFlags)
	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(&scanRunFlags)
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
	logger.Info(ctx, "scan complete", logging.Fields{
		"root":    root,
		"entries": p.Stats.Entries,
		"groups":  p.Stats.Groups,
	})

	if cfg.Output.Format == "json" {
		return newFormatter(cfg, os.Stdout).PlanSummary(p)
	}

	printScanStats(p)
	return nil
}

func printScanStats(p *models.Plan) {
	fmt.Printf("Scanned: %s\n", p.Root)
	fmt.Printf("  Entries:       %d\n", p.Stats.Entries)
	fmt.Printf("  Folder games:  %d\n", p.Stats.FolderGames)
	fmt.Printf("  Title groups:  %d\n", p.Stats.Groups)
	fmt.Printf("  Saves paired:  %d\n", p.Stats.SavesPaired)

	if len(p.Stats.ByRegion) > 0 {
		fmt.Println("\nBy region:")
		regions := make([]string, 0, len(p.Stats.ByRegion))
		for r := range p.Stats.ByRegion {
			regions = append(regions, r)
		}
		sort.Strings(regions)
		for _, r := range regions {
			fmt.Printf("  %-16s %d\n", r, p.Stats.ByRegion[r])
		}
	}

	if len(p.UnknownTags) > 0 {
		fmt.Println("\nUnrecognized tags:")
		for _, tag := range p.UnknownTags {
			fmt.Printf("  (%s)\n", tag)
		}
	}
}
