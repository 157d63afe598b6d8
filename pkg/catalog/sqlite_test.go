package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mhoutman/romsort/pkg/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(t *testing.T, root string, unknownTags []string) *models.Report {
	t.Helper()
	p := models.NewPlan(root, models.DefaultSteps)
	p.Stats.Entries = 5
	p.Stats.Groups = 3
	p.Stats.ByDestination = map[models.DestinationKind]int{
		models.DestKeep:   3,
		models.DestRegion: 2,
	}
	p.Stats.ByRegion = map[string]int{"Europe": 2}
	p.UnknownTags = unknownTags

	return &models.Report{
		Plan:     p,
		Duration: 120 * time.Millisecond,
		Stats:    models.ExecStats{Moved: 2, Kept: 3},
		Status:   models.StatusSuccess,
	}
}

func TestRecordAndListRuns(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first := sampleReport(t, "/roms/gb", nil)
	if err := s.RecordRun(ctx, first); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	second := sampleReport(t, "/roms/snes", nil)
	second.Plan.CreatedAt = second.Plan.CreatedAt.Add(time.Second)
	if err := s.RecordRun(ctx, second); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := s.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Root != "/roms/snes" {
		t.Errorf("newest run first: got root %q, want /roms/snes", runs[0].Root)
	}
	if runs[0].Moved != 2 || runs[0].Kept != 3 {
		t.Errorf("run stats = moved %d kept %d, want 2/3", runs[0].Moved, runs[0].Kept)
	}
}

func TestGetRunByPrefix(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	rep := sampleReport(t, "/roms/gb", nil)
	if err := s.RecordRun(ctx, rep); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	got, err := s.GetRun(ctx, rep.Plan.ID[:8])
	if err != nil {
		t.Fatalf("GetRun by prefix: %v", err)
	}
	if got.ID != rep.Plan.ID {
		t.Errorf("got run %s, want %s", got.ID, rep.Plan.ID)
	}
	if got.ByRegion["Europe"] != 2 {
		t.Errorf("ByRegion not restored: %v", got.ByRegion)
	}
	if got.ByDestination["region"] != 2 {
		t.Errorf("ByDestination not restored: %v", got.ByDestination)
	}

	if _, err := s.GetRun(ctx, "nonexistent"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestUnknownTagAccumulation(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := s.RecordRun(ctx, sampleReport(t, "/roms", []string{"Unl", "Aftermarket"})); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := s.RecordRun(ctx, sampleReport(t, "/roms", []string{"Unl"})); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	tags, err := s.UnknownTags(ctx)
	if err != nil {
		t.Fatalf("UnknownTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	if tags[0].Tag != "Unl" || tags[0].Count != 2 {
		t.Errorf("most frequent first: got %q count %d, want Unl count 2", tags[0].Tag, tags[0].Count)
	}
	if tags[1].Tag != "Aftermarket" || tags[1].Count != 1 {
		t.Errorf("got %q count %d, want Aftermarket count 1", tags[1].Tag, tags[1].Count)
	}
}
