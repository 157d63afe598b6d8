package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/catalog"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past cleanup runs",
		Long:  `List and inspect recorded runs, and review tags no table recognized.`,
	}

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryUnknownsCommand())

	return cmd
}

func newHistoryListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(commandContext(cmd), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			fmt.Printf("%-10s %-20s %-9s %-7s %6s %6s %6s  %s\n",
				"ID", "DATE", "STATUS", "DRYRUN", "FILES", "MOVED", "ERRORS", "ROOT")
			for _, r := range runs {
				fmt.Printf("%-10s %-20s %-9s %-7t %6d %6d %6d  %s\n",
					shortID(r.ID), r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					r.Status, r.DryRun, r.Entries, r.Moved, r.Errored, r.Root)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list")
	return cmd
}

func newHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Run:      %s\n", run.ID)
			fmt.Printf("Date:     %s\n", run.CreatedAt.Local().Format(time.RFC1123))
			fmt.Printf("Root:     %s\n", run.Root)
			fmt.Printf("Status:   %s\n", run.Status)
			fmt.Printf("Dry run:  %t\n", run.DryRun)
			fmt.Printf("Steps:    %v\n", run.Steps)
			fmt.Printf("Duration: %s\n", time.Duration(run.DurationMs)*time.Millisecond)
			fmt.Printf("\nEntries: %d across %d title groups\n", run.Entries, run.Groups)
			fmt.Printf("Moved %d, kept %d, errors %d\n", run.Moved, run.Kept, run.Errored)

			if len(run.ByDestination) > 0 {
				fmt.Println("\nBy destination:")
				printCountMap(run.ByDestination)
			}
			if len(run.ByRegion) > 0 {
				fmt.Println("\nBy region:")
				printCountMap(run.ByRegion)
			}
			return nil
		},
	}
}

func newHistoryUnknownsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unknowns",
		Short: "List tags no classification table recognized",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			tags, err := store.UnknownTags(commandContext(cmd))
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				fmt.Println("No unrecognized tags recorded.")
				return nil
			}

			fmt.Printf("%-30s %6s  %s\n", "TAG", "SEEN", "LAST SEEN")
			for _, t := range tags {
				fmt.Printf("%-30s %6d  %s\n", t.Tag, t.Count, t.LastSeen.Local().Format("2006-01-02"))
			}
			return nil
		},
	}
}

// requireCatalog opens the catalog and errors when it is disabled.
func requireCatalog() (*catalog.Store, error) {
	cfg, err := loadConfig(nil)
	if err != nil {
		return nil, err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("run catalog is disabled in the configuration")
	}
	return store, nil
}

// shortID abbreviates a run ID for the list view. IDs come from an
// on-disk database the user can edit, so no length is assumed.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printCountMap(m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-16s %d\n", k, m[k])
	}
}
