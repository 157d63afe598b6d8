// Package region resolves release-territory tags to one primary region
// under a configurable priority order.
package region

import (
	"strings"

	"github.com/mhoutman/romsort/pkg/models"
)

// Canonical lists every known region in table order. Regions missing from
// a configured priority list rank after all configured ones, in this
// order.
var Canonical = []string{
	"USA",
	"Europe",
	"Japan",
	"World",
	"Asia",
	"Australia",
	"Brazil",
	"Canada",
	"China",
	"France",
	"Germany",
	"Italy",
	"Korea",
	"Netherlands",
	"Spain",
	"Sweden",
	"Taiwan",
	"UK",
}

// aliases maps lowercased tag forms to canonical regions. Short forms of
// two letters or less are matched case-sensitively against the upper-case
// convention ((U), (FR)) so that mixed-case language codes like (Fr) or
// (De) never resolve as regions.
var aliases = []struct {
	region string
	long   []string // case-insensitive
	short  []string // upper-case only
}{
	{"USA", []string{"usa", "ntsc-u"}, []string{"US", "U", "NA"}},
	{"Europe", []string{"europe", "pal"}, []string{"EU", "E"}},
	{"Japan", []string{"japan", "ntsc-j"}, []string{"JP", "J"}},
	{"World", []string{"world"}, []string{"W"}},
	{"Asia", []string{"asia"}, []string{"AS"}},
	{"Australia", []string{"australia", "aus"}, []string{"AU"}},
	{"Brazil", []string{"brazil"}, []string{"BR"}},
	{"Canada", []string{"canada"}, []string{"CA"}},
	{"China", []string{"china"}, []string{"CN"}},
	{"France", []string{"france"}, []string{"FR"}},
	{"Germany", []string{"germany"}, []string{"DE"}},
	{"Italy", []string{"italy"}, []string{"IT"}},
	{"Korea", []string{"korea"}, []string{"KR"}},
	{"Netherlands", []string{"netherlands"}, []string{"NL"}},
	{"Spain", []string{"spain"}, []string{"ES"}},
	{"Sweden", []string{"sweden"}, []string{"SE"}},
	{"Taiwan", []string{"taiwan"}, []string{"TW"}},
	{"UK", []string{"uk", "united kingdom"}, []string{"GB"}},
}

var canonicalIndex = func() map[string]int {
	m := make(map[string]int, len(Canonical))
	for i, r := range Canonical {
		m[r] = i
	}
	return m
}()

// MatchTag resolves one raw tag to a canonical region name. The second
// return value is false when the tag is not a region marker.
func MatchTag(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, a := range aliases {
		for _, l := range a.long {
			if lower == l {
				return a.region, true
			}
		}
		for _, s := range a.short {
			if trimmed == s {
				return a.region, true
			}
		}
	}
	return "", false
}

// Known reports whether name is a canonical region.
func Known(name string) bool {
	_, ok := canonicalIndex[name]
	return ok
}

// Resolver computes primary regions under one priority order.
type Resolver struct {
	priority      []string
	priorityIndex map[string]int
	defaultRegion string
}

// NewResolver builds a resolver for the given priority order. Regions
// not listed rank below every listed one, ordered by the canonical
// table. defaultRegion substitutes for Japan on translated entries and
// fills in when a translated entry carries no region at all.
func NewResolver(priority []string, defaultRegion string) *Resolver {
	idx := make(map[string]int, len(priority))
	for i, r := range priority {
		if _, dup := idx[r]; !dup {
			idx[r] = i
		}
	}
	return &Resolver{
		priority:      priority,
		priorityIndex: idx,
		defaultRegion: defaultRegion,
	}
}

// Index returns the sort position of a region: its priority-list index,
// or for unlisted regions a position after every listed one following
// canonical table order. models.RegionUnknown sorts after everything.
func (r *Resolver) Index(region string) int {
	if i, ok := r.priorityIndex[region]; ok {
		return i
	}
	if i, ok := canonicalIndex[region]; ok {
		return len(r.priority) + i
	}
	return len(r.priority) + len(Canonical)
}

// Best picks the region with the smallest index. Empty input yields
// models.RegionUnknown.
func (r *Resolver) Best(regions []string) string {
	best := models.RegionUnknown
	bestIdx := r.Index(best)
	for _, reg := range regions {
		if i := r.Index(reg); i < bestIdx {
			best = reg
			bestIdx = i
		}
	}
	return best
}

// Resolve computes the primary region of an entry from its region tags.
// translated marks entries carrying a translation tag: those swap Japan
// for the default region, and fall back to the default region when no
// region tag is present at all.
func (r *Resolver) Resolve(regions []string, translated bool) string {
	if translated {
		swapped := make([]string, 0, len(regions))
		for _, reg := range regions {
			if reg == "Japan" {
				reg = r.defaultRegion
			}
			swapped = append(swapped, reg)
		}
		if len(swapped) == 0 {
			swapped = []string{r.defaultRegion}
		}
		regions = swapped
	}
	if len(regions) == 0 {
		return models.RegionUnknown
	}
	return r.Best(regions)
}

// DefaultRegion returns the configured substitute region.
func (r *Resolver) DefaultRegion() string {
	return r.defaultRegion
}
