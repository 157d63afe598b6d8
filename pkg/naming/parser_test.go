package naming

import (
	"testing"

	"github.com/mhoutman/romsort/pkg/models"
)

// ============== Parser Tests ==============

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		stem           string
		wantTitle      string
		wantSpecial    models.SpecialCategory
		wantRevision   string
		wantTranslated bool
		wantUnknown    []string
	}{
		{
			name:         "PlainRegion",
			stem:         "Super Mario World (USA)",
			wantTitle:    "super mario world",
			wantRevision: "none",
		},
		{
			name:           "TranslationTag",
			stem:           "Mother 3 (Japan) [T+Eng]",
			wantTitle:      "mother 3",
			wantSpecial:    models.SpecialTranslation,
			wantRevision:   "none",
			wantTranslated: true,
		},
		{
			name:         "MultiRegionWithRevision",
			stem:         "Street Fighter II (USA, Europe) (Rev A)",
			wantTitle:    "street fighter ii",
			wantRevision: "rev 0",
		},
		{
			name:         "GoodDumpIsNotDominant",
			stem:         "Sonic the Hedgehog (W) [!]",
			wantTitle:    "sonic the hedgehog",
			wantRevision: "none",
		},
		{
			name:         "SpecialAndRevisionTogether",
			stem:         "Final Fight (Europe) (v1.1) [b2]",
			wantTitle:    "final fight",
			wantSpecial:  models.SpecialBeta,
			wantRevision: "v1.1",
		},
		{
			name:         "UnknownTagSurfaces",
			stem:         "Mortal Kombat (USA) (Unl)",
			wantTitle:    "mortal kombat",
			wantRevision: "none",
			wantUnknown:  []string{"Unl"},
		},
		{
			name:           "FreeTextTranslationCredit",
			stem:           "Fire Emblem - Fan Translation",
			wantTitle:      "fire emblem - fan translation",
			wantRevision:   "none",
			wantTranslated: true,
		},
		{
			name:         "FirstRevisionTagWins",
			stem:         "Some Game (v1.2) (rev 5)",
			wantTitle:    "some game",
			wantRevision: "v1.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.stem)
			if got.BaseTitle != tt.wantTitle {
				t.Errorf("BaseTitle = %q, want %q", got.BaseTitle, tt.wantTitle)
			}
			if got.Special != tt.wantSpecial {
				t.Errorf("Special = %q, want %q", got.Special, tt.wantSpecial)
			}
			if got.Revision.String() != tt.wantRevision {
				t.Errorf("Revision = %s, want %s", got.Revision, tt.wantRevision)
			}
			if got.Translated != tt.wantTranslated {
				t.Errorf("Translated = %v, want %v", got.Translated, tt.wantTranslated)
			}
			if len(got.Unknown) != len(tt.wantUnknown) {
				t.Fatalf("Unknown = %v, want %v", got.Unknown, tt.wantUnknown)
			}
			for i, u := range tt.wantUnknown {
				if got.Unknown[i] != u {
					t.Errorf("Unknown[%d] = %q, want %q", i, got.Unknown[i], u)
				}
			}
		})
	}
}

func TestParseRegionTags(t *testing.T) {
	got := Parse("Street Fighter II (USA, Europe) (En,Fr)")

	var regions, languages []string
	for _, tag := range got.Tags {
		switch tag.Category {
		case models.TagRegion:
			regions = append(regions, tag.Canonical)
		case models.TagLanguage:
			languages = append(languages, tag.Canonical)
		}
	}

	if len(regions) != 2 || regions[0] != "USA" || regions[1] != "Europe" {
		t.Errorf("regions = %v, want [USA Europe]", regions)
	}
	if len(languages) != 2 || languages[0] != "English" || languages[1] != "French" {
		t.Errorf("languages = %v, want [English French]", languages)
	}
}
