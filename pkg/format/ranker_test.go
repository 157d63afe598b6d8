package format

import (
	"testing"

	"github.com/mhoutman/romsort/pkg/models"
)

func TestRank(t *testing.T) {
	tests := []struct {
		ext  string
		want int
	}{
		{".nes", 10},
		{"nes", 10},
		{".NES", 10},
		{".smc", 9},
		{".chd", 9},
		{".cue", 8},
		{".zip", 1},
		{".7z", 1},
		{".gz", 2},
		{".bin", 5},
		{".xyz", SentinelRank},
		{"", SentinelRank},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := Rank(tt.ext); got != tt.want {
				t.Errorf("Rank(%q) = %d, want %d", tt.ext, got, tt.want)
			}
		})
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		ext  string
		want models.SystemFamily
	}{
		{".nes", models.FamilyNintendo},
		{".sfc", models.FamilyNintendo},
		{".md", models.FamilySega},
		{".psx", models.FamilySony},
		{".pce", models.FamilyNEC},
		{".neo", models.FamilySNK},
		{".a26", models.FamilyAtari},
		{".xbe", models.FamilyXbox},
		{".d64", models.FamilyComputer},
		{".chd", models.FamilyDisc},
		{".zip", models.FamilyArchive},
		{".bin", models.FamilyGeneric},
		{".xyz", models.FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := FamilyOf(tt.ext); got != tt.want {
				t.Errorf("FamilyOf(%q) = %s, want %s", tt.ext, got, tt.want)
			}
		})
	}
}

func TestOrderIsDeterministicTieBreak(t *testing.T) {
	// .nes and .sfc both score 10; .nes is listed first so it must win
	// the tie-break.
	if Rank(".nes") != Rank(".sfc") {
		t.Fatal("test assumes .nes and .sfc rank equal")
	}
	if Order(".nes") >= Order(".sfc") {
		t.Errorf("Order(.nes) = %d, want smaller than Order(.sfc) = %d",
			Order(".nes"), Order(".sfc"))
	}

	// Unknown extensions sort after everything listed.
	if Order(".xyz") <= Order(".lst") {
		t.Errorf("unknown extension order %d should be after %d", Order(".xyz"), Order(".lst"))
	}
}

func TestIsSave(t *testing.T) {
	for _, ext := range []string{".srm", ".sav", ".rtc", ".fla", ".st0", ".st9", ".fc3", ".zs5", ".sm1", ".vb7", ".ds9"} {
		if !IsSave(ext) {
			t.Errorf("IsSave(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".nes", ".zip", ".st", ".sm", ""} {
		if IsSave(ext) {
			t.Errorf("IsSave(%q) = true, want false", ext)
		}
	}
}

func TestIsROM(t *testing.T) {
	for _, ext := range []string{".nes", ".zip", ".chd", ".cue", ".bin"} {
		if !IsROM(ext) {
			t.Errorf("IsROM(%q) = false, want true", ext)
		}
	}
	// Save files live beside ROMs but are never classified on their own.
	for _, ext := range []string{".srm", ".st0", ".txt", ".xyz", ""} {
		if IsROM(ext) {
			t.Errorf("IsROM(%q) = true, want false", ext)
		}
	}
}

func TestFolderRanksBeatLoneDiscImages(t *testing.T) {
	if RankCueBinSet <= Rank(".chd") {
		t.Errorf("cue/bin set rank %d must exceed lone .chd rank %d", RankCueBinSet, Rank(".chd"))
	}
	if RankMultiDisc <= Rank(".iso") {
		t.Errorf("multi-disc rank %d must exceed lone .iso rank %d", RankMultiDisc, Rank(".iso"))
	}
}
