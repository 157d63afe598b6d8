package plan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mhoutman/romsort/internal/fsutil"
	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
)

// Executor carries out a plan's relocations. Moves are plain renames
// into managed folders under the scan root; delete directives stage
// into the delete folder, nothing is ever unlinked. Per-file errors are
// recorded and execution continues past them.
type Executor struct {
	cfg    *config.Config
	logger logging.Logger

	// OnMove, when set, is called after each completed (or previewed)
	// relocation. Formatters hook progress bars in here.
	OnMove func(models.MoveResult)
}

// NewExecutor builds an executor for one configuration.
func NewExecutor(cfg *config.Config, logger logging.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Executor{cfg: cfg, logger: logger}
}

// Execute runs every directive of the plan in order. With dryRun set it
// computes target paths and the report without touching the filesystem.
func (x *Executor) Execute(ctx context.Context, p *models.Plan, dryRun bool) (*models.Report, error) {
	report := &models.Report{
		Plan:      p,
		DryRun:    dryRun,
		StartTime: time.Now(),
	}

	// Same-stem copies in one directory all pair with the same save
	// file. The save belongs to whichever copy stays put; it travels
	// only when every copy sharing it relocates, and then at most once.
	keeperSaves := make(map[string]bool)
	for _, d := range p.Directives {
		if !d.Relocates() && d.Entry.HasSave() {
			keeperSaves[d.Entry.SavePath] = true
		}
	}
	movedSaves := make(map[string]bool)

	for _, d := range p.Directives {
		select {
		case <-ctx.Done():
			report.Status = models.StatusCancelled
			report.EndTime = time.Now()
			report.Duration = report.EndTime.Sub(report.StartTime)
			return report, ctx.Err()
		default:
		}

		if !d.Relocates() {
			report.Stats.Kept++
			continue
		}

		moveSave := d.Entry.HasSave() && !keeperSaves[d.Entry.SavePath] && !movedSaves[d.Entry.SavePath]
		res, err := x.move(ctx, p.Root, d, dryRun, moveSave)
		if moveSave && res.SaveDest != "" {
			movedSaves[d.Entry.SavePath] = true
		}
		if err != nil {
			report.Errors = append(report.Errors, models.MoveError{
				Path:      d.Entry.Path,
				Dest:      d.Destination,
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
			report.Stats.Errored++
			x.logger.Error(ctx, "move failed", err, logging.Fields{
				"path": d.Entry.Path,
				"dest": d.Destination.String(),
			})
			continue
		}

		report.Results = append(report.Results, res)
		report.Stats.Moved++
		report.Stats.BytesStaged += d.Entry.Size
		if d.Entry.Kind == models.KindFolder {
			report.Stats.FoldersMoved++
		}
		if res.SaveDest != "" {
			report.Stats.SavesMoved++
		}
		if x.OnMove != nil {
			x.OnMove(res)
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	if report.Stats.Errored > 0 {
		report.Status = models.StatusPartial
	} else {
		report.Status = models.StatusSuccess
	}
	return report, nil
}

// move relocates one entry into the directive's destination folder,
// renaming on collision. The paired save file comes along only when
// this entry owns it (moveSave).
func (x *Executor) move(ctx context.Context, root string, d models.Directive, dryRun, moveSave bool) (models.MoveResult, error) {
	destDir := x.destinationDir(root, d.Destination)
	if destDir == "" {
		return models.MoveResult{}, fmt.Errorf("no destination folder for %s", d.Destination)
	}
	if !fsutil.WithinRoot(root, destDir) {
		return models.MoveResult{}, fmt.Errorf("destination %s escapes scan root", destDir)
	}

	if !dryRun {
		if err := fsutil.EnsureDir(destDir); err != nil {
			return models.MoveResult{}, err
		}
	}

	target := fsutil.UniquePath(filepath.Join(destDir, d.Entry.Name))
	res := models.MoveResult{
		Source:      d.Entry.Path,
		Dest:        target,
		Destination: d.Destination,
		Renamed:     filepath.Base(target) != d.Entry.Name,
	}

	if !dryRun {
		if err := os.Rename(d.Entry.Path, target); err != nil {
			return models.MoveResult{}, fmt.Errorf("move %s: %w", d.Entry.Path, err)
		}
	}
	x.logger.Debug(ctx, "moved", logging.Fields{
		"from":    d.Entry.Path,
		"to":      target,
		"dry_run": dryRun,
	})

	// The save file travels with its ROM, always to the same folder.
	if moveSave {
		saveTarget := fsutil.UniquePath(filepath.Join(destDir, filepath.Base(d.Entry.SavePath)))
		if !dryRun {
			if err := os.Rename(d.Entry.SavePath, saveTarget); err != nil {
				return res, fmt.Errorf("move save %s: %w", d.Entry.SavePath, err)
			}
		}
		res.SaveDest = saveTarget
	}

	return res, nil
}

// destinationDir maps a directive destination to its folder under the
// scan root.
func (x *Executor) destinationDir(root string, dest models.Destination) string {
	switch dest.Kind {
	case models.DestRegion:
		return filepath.Join(root, dest.Target)
	case models.DestSpecial:
		return filepath.Join(root, x.cfg.Folders.Specials)
	case models.DestCasino:
		return filepath.Join(root, x.cfg.Folders.Casino)
	case models.DestAdult:
		return filepath.Join(root, x.cfg.Folders.Adult)
	case models.DestReview:
		return filepath.Join(root, x.cfg.Folders.Review)
	case models.DestDelete:
		return filepath.Join(root, x.cfg.Folders.Delete)
	}
	return ""
}
