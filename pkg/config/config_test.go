package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mhoutman/romsort/pkg/models"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}

	if cfg.Regions.Priority[0] != "USA" {
		t.Errorf("Priority[0] = %s, want USA", cfg.Regions.Priority[0])
	}
	if cfg.Versions.OlderAction != models.OlderReview {
		t.Errorf("OlderAction = %s, want review", cfg.Versions.OlderAction)
	}
	if cfg.Folders.Delete != "ROM_DELETE" {
		t.Errorf("Folders.Delete = %s, want ROM_DELETE", cfg.Folders.Delete)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"BadOlderAction", func(c *Config) { c.Versions.OlderAction = "archive" }, true},
		{"EmptyPriority", func(c *Config) { c.Regions.Priority = nil }, true},
		{"EmptyDefaultRegion", func(c *Config) { c.Regions.Default = "" }, true},
		{"EmptySteps", func(c *Config) { c.Workflow.Steps = nil }, true},
		{"UnknownStep", func(c *Config) { c.Workflow.Steps = []models.Step{"shred"} }, true},
		{"EmptyFolderName", func(c *Config) { c.Folders.Delete = "" }, true},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, true},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "text" }, true},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := Default()
	cfg.Regions.Priority = []string{"Japan", "USA"}
	cfg.Scan.Subfolders = true
	cfg.Versions.OlderAction = models.OlderDelete

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile error = %v", err)
	}

	if loaded.Regions.Priority[0] != "Japan" {
		t.Errorf("Priority[0] = %s, want Japan", loaded.Regions.Priority[0])
	}
	if !loaded.Scan.Subfolders {
		t.Error("Subfolders should survive the round trip")
	}
	if loaded.Versions.OlderAction != models.OlderDelete {
		t.Errorf("OlderAction = %s, want delete", loaded.Versions.OlderAction)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile should fail for a missing file")
	}
}

func TestLoadFromFileInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "versions:\n  detect: true\n  older_action: shred\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile should reject an invalid older_action")
	}
}

func TestManagedFolderNames(t *testing.T) {
	names := Default().ManagedFolderNames()
	want := map[string]bool{
		"ROM_DELETE": true, "ROM_REVIEW": true,
		"Casino": true, "Adult": true, "Beta-Proto": true,
	}
	if len(names) != len(want) {
		t.Fatalf("ManagedFolderNames length = %d, want %d", len(names), len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected managed folder %s", n)
		}
	}
}
