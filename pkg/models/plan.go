package models

import (
	"time"

	"github.com/google/uuid"
)

// Directive is the decision for one entry: where it goes and why.
type Directive struct {
	Entry *Entry

	// Destination is the routing outcome
	Destination Destination

	// Reason is a short human-readable explanation
	Reason string

	// Step is the workflow stage that produced this directive
	Step Step
}

// Relocates reports whether the directive moves the entry anywhere.
func (d Directive) Relocates() bool {
	return d.Destination.Kind != DestKeep
}

// Plan is the ordered list of directives for one scan, plus aggregate
// statistics. Directive order follows scan order and is stable across
// runs on identical input.
type Plan struct {
	// ID identifies the run in reports and the catalog
	ID string

	// Root is the scanned directory
	Root string

	// CreatedAt is when classification ran
	CreatedAt time.Time

	// Steps are the workflow stages that were applied, in order
	Steps []Step

	// DryRun records whether the plan was built for preview only
	DryRun bool

	// Directives holds exactly one decision per entry
	Directives []Directive

	// Stats aggregates the classification outcome
	Stats PlanStats

	// UnknownTags are paren or bracket segments no table classified,
	// collected for curation
	UnknownTags []string
}

// NewPlan builds an empty plan for the given root with a fresh ID.
func NewPlan(root string, steps []Step) *Plan {
	return &Plan{
		ID:        uuid.New().String(),
		Root:      root,
		CreatedAt: time.Now(),
		Steps:     steps,
		Stats: PlanStats{
			ByDestination: make(map[DestinationKind]int),
			ByRegion:      make(map[string]int),
		},
	}
}

// Append records a directive and keeps the statistics in step with it.
// Region counts attribute each entry once, under its resolved primary
// region.
func (p *Plan) Append(d Directive) {
	p.Directives = append(p.Directives, d)
	p.Stats.ByDestination[d.Destination.Kind]++
	p.Stats.ByRegion[d.Entry.Region]++
	if d.Relocates() {
		p.Stats.Moves++
	}
}

// PlanStats aggregates classification counts for one run.
type PlanStats struct {
	// Entries classified (files plus folder games)
	Entries int

	// FolderGames among the entries
	FolderGames int

	// Groups formed by identity grouping
	Groups int

	// SavesPaired counts entries with an associated save file
	SavesPaired int

	// Moves counts directives that relocate their entry
	Moves int

	// ByDestination counts entries per destination category
	ByDestination map[DestinationKind]int

	// ByRegion counts entries per resolved primary region; multi-region
	// entries count once
	ByRegion map[string]int
}

// ValidationError reports an invalid configuration or argument value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
