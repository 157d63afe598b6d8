package naming

import (
	"testing"

	"github.com/mhoutman/romsort/pkg/models"
)

// ============== Tag Classifier Tests ==============

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		raw           string
		wantCategory  models.TagCategory
		wantCanonical string
	}{
		// Regions, long and short forms
		{"USA", models.TagRegion, "USA"},
		{"usa", models.TagRegion, "USA"},
		{"U", models.TagRegion, "USA"},
		{"NA", models.TagRegion, "USA"},
		{"PAL", models.TagRegion, "Europe"},
		{"NTSC-J", models.TagRegion, "Japan"},
		{"W", models.TagRegion, "World"},
		{"United Kingdom", models.TagRegion, "UK"},
		{"FR", models.TagRegion, "France"},

		// Special versions
		{"Proto", models.TagSpecial, "Proto"},
		{"Prototype 2", models.TagSpecial, "Proto"},
		{"Beta 3", models.TagSpecial, "Beta"},
		{"beta 2.1", models.TagSpecial, "Beta"},
		{"b1", models.TagSpecial, "Beta"},
		{"b", models.TagSpecial, "Beta"},
		{"Alpha", models.TagSpecial, "Alpha"},
		{"a2", models.TagSpecial, "Alpha"},
		{"Demo 1", models.TagSpecial, "Demo"},
		{"Sample", models.TagSpecial, "Sample"},
		{"Hack", models.TagSpecial, "Hack"},
		{"h1", models.TagSpecial, "Hack"},
		{"h", models.TagSpecial, "Homebrew"},
		{"T+Eng", models.TagSpecial, "Translation"},
		{"T-Fre", models.TagSpecial, "Translation"},
		{"Translation", models.TagSpecial, "Translation"},
		{"t1", models.TagSpecial, "Trainer"},
		{"Trainer", models.TagSpecial, "Trainer"},
		{"o1", models.TagSpecial, "Overdump"},
		{"!p", models.TagSpecial, "Bad Dump"},
		{"Bad", models.TagSpecial, "Bad Dump"},
		{"!", models.TagSpecial, "Good Dump"},
		{"cr", models.TagSpecial, "Cracked"},
		{"f1", models.TagSpecial, "Fixed"},
		{"p1", models.TagSpecial, "Pirate"},

		// Languages, including codes that collide with region short
		// forms in anything but case
		{"En", models.TagLanguage, "English"},
		{"Eng", models.TagLanguage, "English"},
		{"English", models.TagLanguage, "English"},
		{"Fr", models.TagLanguage, "French"},
		{"De", models.TagLanguage, "German"},
		{"Es", models.TagLanguage, "Spanish"},
		{"Pt", models.TagLanguage, "Portuguese"},

		// Revisions
		{"v1.1", models.TagRevision, "v1.1"},
		{"1.0", models.TagRevision, "v1.0"},
		{"Rev A", models.TagRevision, "rev 0"},
		{"rev 2", models.TagRevision, "rev 2"},

		// Unknown
		{"Unl", models.TagUnknown, ""},
		{"SGB Enhanced", models.TagUnknown, ""},
		{"Disc 1", models.TagUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ClassifyTag(tt.raw)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", got.Category, tt.wantCategory)
			}
			if got.Canonical != tt.wantCanonical {
				t.Errorf("Canonical = %q, want %q", got.Canonical, tt.wantCanonical)
			}
			if got.Raw != tt.raw {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.raw)
			}
		})
	}
}

func TestDominantSpecial(t *testing.T) {
	tag := func(c models.SpecialCategory) models.Tag {
		return models.Tag{Raw: string(c), Category: models.TagSpecial, Canonical: string(c)}
	}

	tests := []struct {
		name string
		tags []models.Tag
		want models.SpecialCategory
	}{
		{
			name: "NoSpecials",
			tags: []models.Tag{{Raw: "USA", Category: models.TagRegion, Canonical: "USA"}},
			want: "",
		},
		{
			name: "SingleSpecial",
			tags: []models.Tag{tag(models.SpecialDemo)},
			want: models.SpecialDemo,
		},
		{
			name: "ProtoBeatsTrainer",
			tags: []models.Tag{tag(models.SpecialTrainer), tag(models.SpecialProto)},
			want: models.SpecialProto,
		},
		{
			name: "BetaBeatsHack",
			tags: []models.Tag{tag(models.SpecialHack), tag(models.SpecialBeta)},
			want: models.SpecialBeta,
		},
		{
			name: "GoodDumpAloneIsNotDominant",
			tags: []models.Tag{tag(models.SpecialGoodDump)},
			want: "",
		},
		{
			name: "GoodDumpIgnoredNextToTranslation",
			tags: []models.Tag{tag(models.SpecialGoodDump), tag(models.SpecialTranslation)},
			want: models.SpecialTranslation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantSpecial(tt.tags); got != tt.want {
				t.Errorf("DominantSpecial = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============== Content Detection Tests ==============

func TestIsCasinoTitle(t *testing.T) {
	tests := []struct {
		stem string
		want bool
	}{
		{"Casino Kid (USA)", true},
		{"Vegas Stakes (USA)", true},
		{"World Class Poker", true},
		{"Caesars Palace (USA)", true},
		{"Pachinko Time", true},
		{"Slot Machine (USA)", true},
		{"Bingo Night", true},

		// Exclusions win even when a casino term is present
		{"Star Trek - Bridge Simulator", false},
		{"Wheel of Fortune - Game Show Edition", false},
		{"Pokemon Trading Card Game", false},
		{"Monopoly (USA)", false},
		{"Chip 'n Dale Rescue Rangers", false},
		{"Expansion Slot Tester", false},

		{"Super Mario World (USA)", false},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			if got := IsCasinoTitle(tt.stem); got != tt.want {
				t.Errorf("IsCasinoTitle(%q) = %v, want %v", tt.stem, got, tt.want)
			}
		})
	}
}

func TestIsAdultTitle(t *testing.T) {
	tests := []struct {
		stem string
		want bool
	}{
		{"Super Maruo (Japan)", true},
		{"Strip Poker II", true},
		{"Playboy - The Mansion", true},
		{"Honey Peach", true},
		{"Love Quest (18+)", true},

		// Family titles with trigger words stay clean
		{"Night Trap (USA)", false},
		{"Sexy Parodius (Japan)", false},
		{"Midnight Resistance (Japan)", false},
		{"Secret of Mana (USA)", false},

		{"Tetris (World)", false},
	}

	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			if got := IsAdultTitle(tt.stem); got != tt.want {
				t.Errorf("IsAdultTitle(%q) = %v, want %v", tt.stem, got, tt.want)
			}
		})
	}
}
