package region

import (
	"testing"

	"github.com/mhoutman/romsort/pkg/models"
)

func TestMatchTag(t *testing.T) {
	tests := []struct {
		raw    string
		region string
		ok     bool
	}{
		{"USA", "USA", true},
		{"usa", "USA", true},
		{"U", "USA", true},
		{"NA", "USA", true},
		{"Europe", "Europe", true},
		{"PAL", "Europe", true},
		{"E", "Europe", true},
		{"Japan", "Japan", true},
		{"NTSC-J", "Japan", true},
		{"World", "World", true},
		{"W", "World", true},
		{"FR", "France", true},
		{"United Kingdom", "UK", true},
		// Mixed-case two-letter codes are language markers, not regions
		{"Fr", "", false},
		{"De", "", false},
		{"En", "", false},
		{"Beta", "", false},
		{"v1.1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			region, ok := MatchTag(tt.raw)
			if ok != tt.ok {
				t.Fatalf("MatchTag(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if region != tt.region {
				t.Errorf("MatchTag(%q) = %s, want %s", tt.raw, region, tt.region)
			}
		})
	}
}

func TestResolverIndex(t *testing.T) {
	r := NewResolver([]string{"USA", "World", "Europe", "Japan"}, "USA")

	if got := r.Index("USA"); got != 0 {
		t.Errorf("Index(USA) = %d, want 0", got)
	}
	if got := r.Index("Japan"); got != 3 {
		t.Errorf("Index(Japan) = %d, want 3", got)
	}

	// Unlisted regions rank after all listed ones, in canonical order
	brazil := r.Index("Brazil")
	korea := r.Index("Korea")
	if brazil <= 3 {
		t.Errorf("Index(Brazil) = %d, should rank after listed regions", brazil)
	}
	if brazil >= korea {
		t.Errorf("Brazil (%d) should rank before Korea (%d) per canonical order", brazil, korea)
	}

	if unknown := r.Index(models.RegionUnknown); unknown <= korea {
		t.Errorf("Index(Unknown) = %d, should rank after every region", unknown)
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver([]string{"USA", "World", "Europe", "Japan"}, "USA")

	tests := []struct {
		name       string
		regions    []string
		translated bool
		want       string
	}{
		{"MultiRegionPicksPriority", []string{"Europe", "USA"}, false, "USA"},
		{"SingleRegion", []string{"Japan"}, false, "Japan"},
		{"NoRegions", nil, false, models.RegionUnknown},
		{"UnlistedOnly", []string{"Brazil"}, false, "Brazil"},
		{"UnlistedPair", []string{"Korea", "Brazil"}, false, "Brazil"},
		{"TranslatedJapan", []string{"Japan"}, true, "USA"},
		{"TranslatedNoRegion", nil, true, "USA"},
		{"TranslatedEurope", []string{"Europe"}, true, "Europe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.regions, tt.translated); got != tt.want {
				t.Errorf("Resolve(%v, %v) = %s, want %s", tt.regions, tt.translated, got, tt.want)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver([]string{"USA", "World", "Europe", "Japan"}, "USA")
	regions := []string{"Europe", "USA", "Japan"}

	first := r.Resolve(regions, false)
	for i := 0; i < 10; i++ {
		if got := r.Resolve(regions, false); got != first {
			t.Fatalf("Resolve changed between runs: %s then %s", first, got)
		}
	}
}
