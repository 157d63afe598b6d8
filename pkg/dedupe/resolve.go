package dedupe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/format"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/naming"
	"github.com/mhoutman/romsort/pkg/region"
)

// Engine resolves one identity group at a time into routing directives.
// It is a pure function of its configuration: no I/O, no state shared
// between calls.
type Engine struct {
	resolver      *region.Resolver
	steps         []models.Step
	versionDetect bool
	olderAction   models.OlderVersionAction
	mainRegions   map[string]bool
}

// NewEngine builds an engine from an immutable configuration value.
func NewEngine(cfg *config.Config) *Engine {
	main := make(map[string]bool, len(cfg.Regions.Main))
	for _, r := range cfg.Regions.Main {
		main[r] = true
	}
	return &Engine{
		resolver:      region.NewResolver(cfg.Regions.Priority, cfg.Regions.Default),
		steps:         cfg.Workflow.Steps,
		versionDetect: cfg.Versions.Detect,
		olderAction:   cfg.Versions.OlderAction,
		mainRegions:   main,
	}
}

// Resolve produces exactly one directive per group member. The
// configured workflow steps claim entries in order; anything left
// unclaimed at the end defaults to keep.
func (e *Engine) Resolve(group *models.IdentityGroup) []models.Directive {
	claimed := make(map[*models.Entry]models.Directive)

	for _, step := range e.steps {
		switch step {
		case models.StepAdult:
			e.routeContent(group, claimed, step, naming.IsAdultTitle, models.Destination{Kind: models.DestAdult}, "adult content title")
		case models.StepCasino:
			e.routeContent(group, claimed, step, naming.IsCasinoTitle, models.Destination{Kind: models.DestCasino}, "casino content title")
		case models.StepSpecials:
			e.routeDevSpecials(group, claimed)
		case models.StepRegions:
			e.routeOffMainRegions(group, claimed, models.StepRegions, models.KindFile)
		case models.StepFolders:
			e.routeOffMainRegions(group, claimed, models.StepFolders, models.KindFolder)
		case models.StepDuplicates:
			e.resolveDuplicates(group, claimed)
		}
	}

	// Totality: one directive per entry, in scan order.
	out := make([]models.Directive, 0, len(group.Entries))
	for _, entry := range group.Entries {
		d, ok := claimed[entry]
		if !ok {
			d = models.Directive{
				Entry:       entry,
				Destination: models.Keep,
				Reason:      "no applicable rule",
			}
		}
		out = append(out, d)
	}
	return out
}

func (e *Engine) routeContent(group *models.IdentityGroup, claimed map[*models.Entry]models.Directive,
	step models.Step, match func(string) bool, dest models.Destination, reason string) {
	for _, entry := range group.Entries {
		if _, done := claimed[entry]; done {
			continue
		}
		if match(stemOf(entry)) {
			claimed[entry] = models.Directive{Entry: entry, Destination: dest, Reason: reason, Step: step}
		}
	}
}

func (e *Engine) routeDevSpecials(group *models.IdentityGroup, claimed map[*models.Entry]models.Directive) {
	for _, entry := range group.Entries {
		if _, done := claimed[entry]; done {
			continue
		}
		if models.IsDevSpecial(entry.Special) {
			claimed[entry] = models.Directive{
				Entry:       entry,
				Destination: models.SpecialDest(entry.Special),
				Reason:      fmt.Sprintf("%s release", entry.Special),
				Step:        models.StepSpecials,
			}
		}
	}
}

// routeOffMainRegions sends standard releases whose primary region is
// outside the configured main-region list into their region folder.
// Unknown regions stay put; moving a file we cannot place is worse than
// leaving it.
func (e *Engine) routeOffMainRegions(group *models.IdentityGroup, claimed map[*models.Entry]models.Directive,
	step models.Step, kind models.EntryKind) {
	for _, entry := range group.Entries {
		if _, done := claimed[entry]; done {
			continue
		}
		if entry.Kind != kind || entry.Special != "" {
			continue
		}
		if entry.Region == models.RegionUnknown || e.mainRegions[entry.Region] {
			continue
		}
		claimed[entry] = models.Directive{
			Entry:       entry,
			Destination: models.RegionDest(entry.Region),
			Reason:      fmt.Sprintf("%s release outside main regions", entry.Region),
			Step:        step,
		}
	}
}

// resolveDuplicates applies the ordered duplicate policy to everything
// the earlier steps left in the group: special-version routing, region
// partitioning, format competition, the older-version rule, and
// primary-region keeper selection.
func (e *Engine) resolveDuplicates(group *models.IdentityGroup, claimed map[*models.Entry]models.Directive) {
	var remaining []*models.Entry
	for _, entry := range group.Entries {
		if _, done := claimed[entry]; done {
			continue
		}
		// Special versions never compete with the standard release.
		if entry.Special != "" {
			claimed[entry] = models.Directive{
				Entry:       entry,
				Destination: models.SpecialDest(entry.Special),
				Reason:      fmt.Sprintf("%s release", entry.Special),
				Step:        models.StepDuplicates,
			}
			continue
		}
		remaining = append(remaining, entry)
	}
	if len(remaining) == 0 {
		return
	}

	// Partition by primary region, preserving scan order within each.
	partitions := make(map[string][]*models.Entry)
	var order []string
	for _, entry := range remaining {
		if _, seen := partitions[entry.Region]; !seen {
			order = append(order, entry.Region)
		}
		partitions[entry.Region] = append(partitions[entry.Region], entry)
	}

	primary := e.primaryRegion(order)

	for _, reg := range order {
		survivors := e.competeFormats(partitions[reg], claimed)
		survivors = e.applyVersionRule(survivors, claimed)

		for _, entry := range survivors {
			if reg == primary {
				claimed[entry] = models.Directive{
					Entry:       entry,
					Destination: models.Keep,
					Reason:      fmt.Sprintf("best copy for primary region %s", reg),
					Step:        models.StepDuplicates,
				}
			} else {
				claimed[entry] = models.Directive{
					Entry:       entry,
					Destination: models.RegionDest(reg),
					Reason:      fmt.Sprintf("duplicate of primary region %s", primary),
					Step:        models.StepDuplicates,
				}
			}
		}
	}
}

// primaryRegion picks the partition with the smallest priority index.
// Unknown sorts after every real region unless it is the only one.
func (e *Engine) primaryRegion(regions []string) string {
	best := regions[0]
	for _, reg := range regions[1:] {
		if e.regionIndex(reg) < e.regionIndex(best) {
			best = reg
		}
	}
	return best
}

func (e *Engine) regionIndex(reg string) int {
	if reg == models.RegionUnknown {
		return int(^uint(0) >> 1) // after everything
	}
	return e.resolver.Index(reg)
}

// competeFormats runs the format competition inside one region
// partition and returns the surviving entries. Save-file presence is a
// hard override above every save-less sibling; equal scores across
// different extensions break by table order; same-extension entries are
// format-equivalent and all survive to the version rule. Entries with
// unrecognized formats only ever compete against same-extension
// siblings and never lose to (or beat) a known format.
func (e *Engine) competeFormats(entries []*models.Entry, claimed map[*models.Entry]models.Directive) []*models.Entry {
	if len(entries) == 1 {
		return entries
	}

	var known, unknown []*models.Entry
	for _, entry := range entries {
		if entry.Kind == models.KindFile && entry.Family == models.FamilyUnknown {
			unknown = append(unknown, entry)
		} else {
			known = append(known, entry)
		}
	}

	var survivors []*models.Entry

	if len(known) > 0 {
		best := known[0]
		for _, entry := range known[1:] {
			if formatBetter(entry, best) {
				best = entry
			}
		}
		for _, entry := range known {
			if entry == best || formatEquivalent(entry, best) {
				survivors = append(survivors, entry)
				continue
			}
			reason := "lower format rank"
			if entry.FormatRank == best.FormatRank && entry.HasSave() == best.HasSave() {
				reason = fmt.Sprintf("format tie lost to %s", displayFormat(best))
			} else if best.HasSave() && !entry.HasSave() {
				reason = "sibling copy holds the save file"
			}
			claimed[entry] = models.Directive{
				Entry:       entry,
				Destination: models.Destination{Kind: models.DestDelete},
				Reason:      reason,
				Step:        models.StepDuplicates,
			}
		}
	}

	// Unknown formats: each extension is its own equivalence class.
	byExt := make(map[string][]*models.Entry)
	var extOrder []string
	for _, entry := range unknown {
		if _, seen := byExt[entry.Ext]; !seen {
			extOrder = append(extOrder, entry.Ext)
		}
		byExt[entry.Ext] = append(byExt[entry.Ext], entry)
	}
	for _, ext := range extOrder {
		survivors = append(survivors, byExt[ext]...)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Ordinal < survivors[j].Ordinal
	})
	return survivors
}

// formatBetter reports whether a beats b in the format competition.
func formatBetter(a, b *models.Entry) bool {
	if a.HasSave() != b.HasSave() {
		return a.HasSave()
	}
	if a.FormatRank != b.FormatRank {
		return a.FormatRank > b.FormatRank
	}
	return format.Order(a.Ext) < format.Order(b.Ext)
}

// formatEquivalent reports whether two entries tie completely: same
// save status, same score, same extension. Such pairs fall through to
// the version rule instead of one deleting the other.
func formatEquivalent(a, b *models.Entry) bool {
	return a.HasSave() == b.HasSave() &&
		a.FormatRank == b.FormatRank &&
		a.Ext == b.Ext
}

// applyVersionRule routes strictly older revisions among the
// format-equivalent survivors. Older-action keep disables the rule.
func (e *Engine) applyVersionRule(survivors []*models.Entry, claimed map[*models.Entry]models.Directive) []*models.Entry {
	if !e.versionDetect || e.olderAction == models.OlderKeep || len(survivors) < 2 {
		return survivors
	}

	newest := survivors[0]
	for _, entry := range survivors[1:] {
		if models.CompareRevisions(entry.Revision, newest.Revision) > 0 {
			newest = entry
		}
	}

	dest := models.Destination{Kind: models.DestDelete}
	if e.olderAction == models.OlderReview {
		dest = models.Destination{Kind: models.DestReview}
	}

	var out []*models.Entry
	for _, entry := range survivors {
		if models.CompareRevisions(entry.Revision, newest.Revision) < 0 {
			claimed[entry] = models.Directive{
				Entry:       entry,
				Destination: dest,
				Reason:      fmt.Sprintf("revision %s older than %s", entry.Revision, newest.Revision),
				Step:        models.StepDuplicates,
			}
			continue
		}
		out = append(out, entry)
	}
	return out
}

func stemOf(e *models.Entry) string {
	return strings.TrimSuffix(e.Name, e.Ext)
}

func displayFormat(e *models.Entry) string {
	if e.Kind == models.KindFolder {
		return "folder set"
	}
	return e.Ext
}
