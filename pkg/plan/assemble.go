// Package plan assembles per-group directives into one ordered action
// plan and carries it out against the filesystem.
package plan

import (
	"context"
	"sort"

	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/dedupe"
	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/scan"
)

// Builder turns a scan listing into an action plan. Building is pure:
// identical listings and configuration always produce plans with
// identical directives.
type Builder struct {
	cfg    *config.Config
	engine *dedupe.Engine
	logger logging.Logger
}

// NewBuilder constructs a builder for one configuration.
func NewBuilder(cfg *config.Config, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Builder{
		cfg:    cfg,
		engine: dedupe.NewEngine(cfg),
		logger: logger,
	}
}

// Build groups the listing into game identities, resolves every group,
// and flattens the directives into scan order. Folder-kind entries
// yield exactly one directive covering the whole directory.
func (b *Builder) Build(ctx context.Context, listing *scan.Listing) *models.Plan {
	p := models.NewPlan(listing.Root, b.cfg.Workflow.Steps)

	groups := dedupe.Group(listing.Entries)

	var directives []models.Directive
	for _, g := range groups {
		directives = append(directives, b.engine.Resolve(g)...)
	}
	sort.SliceStable(directives, func(i, j int) bool {
		return directives[i].Entry.Ordinal < directives[j].Entry.Ordinal
	})

	for _, d := range directives {
		p.Append(d)
	}

	p.Stats.Entries = len(listing.Entries)
	p.Stats.Groups = len(groups)
	for _, e := range listing.Entries {
		if e.Kind == models.KindFolder {
			p.Stats.FolderGames++
		}
		if e.HasSave() {
			p.Stats.SavesPaired++
		}
	}
	p.UnknownTags = collectUnknownTags(listing.Entries)

	b.logger.Info(ctx, "plan built", logging.Fields{
		"plan_id": p.ID,
		"entries": p.Stats.Entries,
		"groups":  p.Stats.Groups,
		"moves":   p.Stats.Moves,
	})
	return p
}

// collectUnknownTags gathers unclassified tag text across the listing,
// first occurrence order, no duplicates. These surface in reports and
// the catalog so the pattern tables can grow.
func collectUnknownTags(entries []*models.Entry) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, t := range e.Tags {
			if t.Category != models.TagUnknown || seen[t.Raw] {
				continue
			}
			seen[t.Raw] = true
			out = append(out, t.Raw)
		}
	}
	return out
}
