package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"golang.org/x/term"

	"github.com/mhoutman/romsort/pkg/models"
)

// HumanFormatter renders plans and reports as readable text.
type HumanFormatter struct {
	writer io.Writer
	width  int
}

// NewHumanFormatter creates a formatter writing to w. Directive paths
// are truncated to the terminal width when w is a terminal.
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	width := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = tw
		}
	}
	return &HumanFormatter{writer: w, width: width}
}

// PlanSummary renders the directive list followed by the statistics.
func (f *HumanFormatter) PlanSummary(p *models.Plan) error {
	fmt.Fprintf(f.writer, "Plan %s for %s\n", p.ID, p.Root)
	fmt.Fprintf(f.writer, "Steps: ")
	for i, s := range p.Steps {
		if i > 0 {
			fmt.Fprint(f.writer, " → ")
		}
		fmt.Fprint(f.writer, string(s))
	}
	fmt.Fprintf(f.writer, "\n\n")

	for _, d := range p.Directives {
		if !d.Relocates() {
			continue
		}
		line := fmt.Sprintf("  %-16s %s", d.Destination.String(), d.Entry.Name)
		if d.Reason != "" {
			line += "  (" + d.Reason + ")"
		}
		fmt.Fprintln(f.writer, f.truncate(line))
	}

	fmt.Fprintf(f.writer, "\nSummary:\n")
	fmt.Fprintf(f.writer, "  Entries:      %d (%d folder games, %d groups)\n",
		p.Stats.Entries, p.Stats.FolderGames, p.Stats.Groups)
	fmt.Fprintf(f.writer, "  Saves paired: %d\n", p.Stats.SavesPaired)
	fmt.Fprintf(f.writer, "  Moves:        %d\n", p.Stats.Moves)

	fmt.Fprintf(f.writer, "\n  By destination:\n")
	for _, kind := range sortedDestKinds(p.Stats.ByDestination) {
		fmt.Fprintf(f.writer, "    %-10s %d\n", string(kind), p.Stats.ByDestination[kind])
	}

	fmt.Fprintf(f.writer, "\n  By region:\n")
	for _, reg := range sortedKeys(p.Stats.ByRegion) {
		fmt.Fprintf(f.writer, "    %-12s %d\n", reg, p.Stats.ByRegion[reg])
	}

	if len(p.UnknownTags) > 0 {
		fmt.Fprintf(f.writer, "\n  Unknown tags: %d\n", len(p.UnknownTags))
		for _, tag := range p.UnknownTags {
			fmt.Fprintf(f.writer, "    (%s)\n", tag)
		}
	}
	return nil
}

// ExecutionStart announces the run.
func (f *HumanFormatter) ExecutionStart(totalMoves int, dryRun bool) error {
	verb := "Executing"
	if dryRun {
		verb = "Previewing"
	}
	fmt.Fprintf(f.writer, "%s %d relocations...\n", verb, totalMoves)
	return nil
}

// MoveResult prints one relocation line.
func (f *HumanFormatter) MoveResult(res models.MoveResult) error {
	line := fmt.Sprintf("  %s → %s", res.Source, res.Dest)
	if res.Renamed {
		line += " (renamed)"
	}
	fmt.Fprintln(f.writer, f.truncate(line))
	return nil
}

// Complete prints the execution summary.
func (f *HumanFormatter) Complete(report *models.Report) error {
	fmt.Fprintf(f.writer, "\nDone in %s\n", report.Duration.Round(time.Millisecond))
	if report.DryRun {
		fmt.Fprintf(f.writer, "Dry run: no file was touched\n")
	}
	fmt.Fprintf(f.writer, "  Moved:   %d (%d folder games, %d saves)\n",
		report.Stats.Moved, report.Stats.FoldersMoved, report.Stats.SavesMoved)
	fmt.Fprintf(f.writer, "  Kept:    %d\n", report.Stats.Kept)
	fmt.Fprintf(f.writer, "  Staged:  %s\n", formatBytes(report.Stats.BytesStaged))
	if report.Stats.Errored > 0 {
		fmt.Fprintf(f.writer, "  Errored: %d\n", report.Stats.Errored)
		for _, e := range report.Errors {
			fmt.Fprintf(f.writer, "    %s: %s\n", e.Path, e.Message)
		}
	}
	fmt.Fprintf(f.writer, "Status: %s\n", report.Status)
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

func (f *HumanFormatter) truncate(line string) string {
	if f.width <= 4 || len(line) <= f.width {
		return line
	}
	return line[:f.width-3] + "..."
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDestKinds(m map[models.DestinationKind]int) []models.DestinationKind {
	keys := make([]models.DestinationKind, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
