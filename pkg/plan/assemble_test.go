package plan

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/format"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/naming"
	"github.com/mhoutman/romsort/pkg/region"
	"github.com/mhoutman/romsort/pkg/scan"
)

func listingOf(t *testing.T, cfg *config.Config, names ...string) *scan.Listing {
	t.Helper()
	resolver := region.NewResolver(cfg.Regions.Priority, cfg.Regions.Default)
	l := &scan.Listing{Root: "/roms"}
	for i, name := range names {
		ext := format.Normalize(filepath.Ext(name))
		parsed := naming.Parse(strings.TrimSuffix(name, filepath.Ext(name)))
		var regions []string
		for _, tag := range parsed.Tags {
			if tag.Category == models.TagRegion {
				regions = append(regions, tag.Canonical)
			}
		}
		l.Entries = append(l.Entries, &models.Entry{
			Path:       "/roms/" + name,
			Name:       name,
			Kind:       models.KindFile,
			BaseTitle:  parsed.BaseTitle,
			Tags:       parsed.Tags,
			Region:     resolver.Resolve(regions, parsed.Translated),
			Special:    parsed.Special,
			Revision:   parsed.Revision,
			Ext:        ext,
			Family:     format.FamilyOf(ext),
			FormatRank: format.Rank(ext),
			Ordinal:    i,
		})
	}
	return l
}

func TestBuildTotalityAndOrder(t *testing.T) {
	cfg := config.Default()
	listing := listingOf(t, cfg,
		"Zelda (USA).nes",
		"Baseball (Europe).nes",
		"Baseball (USA).nes",
		"Zelda (USA) (Beta).nes",
	)

	p := NewBuilder(cfg, nil).Build(context.Background(), listing)

	if len(p.Directives) != len(listing.Entries) {
		t.Fatalf("got %d directives for %d entries", len(p.Directives), len(listing.Entries))
	}
	for i, d := range p.Directives {
		if d.Entry.Ordinal != i {
			t.Errorf("directive %d carries ordinal %d; plan order must follow scan order", i, d.Entry.Ordinal)
		}
	}
}

func TestBuildStatsCountMultiRegionOnce(t *testing.T) {
	cfg := config.Default()
	listing := listingOf(t, cfg, "Game (USA, Europe).nes")

	p := NewBuilder(cfg, nil).Build(context.Background(), listing)

	if p.Stats.ByRegion["USA"] != 1 {
		t.Errorf("ByRegion[USA] = %d, want 1", p.Stats.ByRegion["USA"])
	}
	if p.Stats.ByRegion["Europe"] != 0 {
		t.Errorf("ByRegion[Europe] = %d, want 0 (counted once under primary region)", p.Stats.ByRegion["Europe"])
	}
	total := 0
	for _, n := range p.Stats.ByRegion {
		total += n
	}
	if total != 1 {
		t.Errorf("region counts total %d, want 1", total)
	}
}

func TestBuildCollectsUnknownTags(t *testing.T) {
	cfg := config.Default()
	listing := listingOf(t, cfg,
		"Game (USA) (Unl).nes",
		"Other (USA) (Unl) (SGB Enhanced).nes",
	)

	p := NewBuilder(cfg, nil).Build(context.Background(), listing)

	want := []string{"Unl", "SGB Enhanced"}
	if len(p.UnknownTags) != len(want) {
		t.Fatalf("UnknownTags = %v, want %v", p.UnknownTags, want)
	}
	for i, tag := range want {
		if p.UnknownTags[i] != tag {
			t.Errorf("UnknownTags[%d] = %q, want %q", i, p.UnknownTags[i], tag)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := config.Default()
	names := []string{
		"Game (USA).nes",
		"Game (Europe).nes",
		"Game (USA).zip",
		"Game (Japan) (v1.1).nes",
		"Vegas Stakes (USA).sfc",
	}

	first := NewBuilder(cfg, nil).Build(context.Background(), listingOf(t, cfg, names...))
	second := NewBuilder(cfg, nil).Build(context.Background(), listingOf(t, cfg, names...))

	if len(first.Directives) != len(second.Directives) {
		t.Fatalf("directive counts differ: %d vs %d", len(first.Directives), len(second.Directives))
	}
	for i := range first.Directives {
		a, b := first.Directives[i], second.Directives[i]
		if a.Entry.Name != b.Entry.Name || a.Destination != b.Destination {
			t.Errorf("directive %d differs: %s→%s vs %s→%s",
				i, a.Entry.Name, a.Destination, b.Entry.Name, b.Destination)
		}
	}
}
