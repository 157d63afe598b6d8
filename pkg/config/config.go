package config

import (
	"github.com/mhoutman/romsort/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Versions VersionConfig `yaml:"versions"`
	Regions  RegionConfig  `yaml:"regions"`
	Scan     ScanConfig    `yaml:"scan"`
	Workflow WorkflowConfig `yaml:"workflow"`
	Folders  FolderConfig  `yaml:"folders"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
	Catalog  CatalogConfig `yaml:"catalog"`
}

// VersionConfig holds revision-handling settings
type VersionConfig struct {
	// Detect enables the older-version rule during duplicate resolution
	Detect bool `yaml:"detect"`

	// OlderAction is what happens to strictly older revisions:
	// delete, review or keep (keep disables the rule)
	OlderAction models.OlderVersionAction `yaml:"older_action"`
}

// RegionConfig holds region priority settings
type RegionConfig struct {
	// Priority orders regions for primary-region resolution; regions
	// not listed rank below all listed ones
	Priority []string `yaml:"priority"`

	// Default is the region assumed for translated ROMs
	Default string `yaml:"default"`

	// Main are the regions whose entries stay in place during the
	// regions workflow step; everything else moves to a region folder
	Main []string `yaml:"main"`
}

// ScanConfig holds scanning settings
type ScanConfig struct {
	// Subfolders enables recursive scanning below the root
	Subfolders bool `yaml:"subfolders"`

	// Exclude lists extra directory names to skip, on top of the
	// managed folders romsort creates itself
	Exclude []string `yaml:"exclude"`
}

// WorkflowConfig holds the cleanup step selection
type WorkflowConfig struct {
	// Steps run in order; see models.DefaultSteps for the recommended
	// sequence
	Steps []models.Step `yaml:"steps"`
}

// FolderConfig names the managed output folders
type FolderConfig struct {
	Delete   string `yaml:"delete"`
	Review   string `yaml:"review"`
	Casino   string `yaml:"casino"`
	Adult    string `yaml:"adult"`
	Specials string `yaml:"specials"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"`      // "json" or "console"
	Level      string `yaml:"level"`       // "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // Log file path (empty = stderr)
	MaxSizeMB  int    `yaml:"max_size_mb"` // Rotate the log file above this size
	MaxBackups int    `yaml:"max_backups"` // Rotated files to keep
}

// CatalogConfig holds run-history settings
type CatalogConfig struct {
	// Enabled turns on plan/run recording
	Enabled bool `yaml:"enabled"`

	// Path of the SQLite database; empty selects the default location
	Path string `yaml:"path"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Versions: VersionConfig{
			Detect:      true,
			OlderAction: models.OlderReview,
		},
		Regions: RegionConfig{
			Priority: []string{"USA", "World", "Europe", "Japan"},
			Default:  "USA",
			Main:     []string{"USA", "World"},
		},
		Scan: ScanConfig{
			Subfolders: false,
			Exclude:    nil,
		},
		Workflow: WorkflowConfig{
			Steps: models.DefaultSteps,
		},
		Folders: FolderConfig{
			Delete:   "ROM_DELETE",
			Review:   "ROM_REVIEW",
			Casino:   "Casino",
			Adult:    "Adult",
			Specials: "Beta-Proto",
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Format:     "console",
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Catalog: CatalogConfig{
			Enabled: true,
			Path:    "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Versions.OlderAction.Valid() {
		return &models.ValidationError{
			Field:   "versions.older_action",
			Message: "must be 'delete', 'review', or 'keep'",
		}
	}

	if len(c.Regions.Priority) == 0 {
		return &models.ValidationError{
			Field:   "regions.priority",
			Message: "must list at least one region",
		}
	}

	if c.Regions.Default == "" {
		return &models.ValidationError{
			Field:   "regions.default",
			Message: "must name a region",
		}
	}

	if len(c.Workflow.Steps) == 0 {
		return &models.ValidationError{
			Field:   "workflow.steps",
			Message: "must list at least one step",
		}
	}
	for _, s := range c.Workflow.Steps {
		if !s.Valid() {
			return &models.ValidationError{
				Field:   "workflow.steps",
				Message: "unknown step '" + string(s) + "'",
			}
		}
	}

	for field, name := range map[string]string{
		"folders.delete":   c.Folders.Delete,
		"folders.review":   c.Folders.Review,
		"folders.casino":   c.Folders.Casino,
		"folders.adult":    c.Folders.Adult,
		"folders.specials": c.Folders.Specials,
	} {
		if name == "" {
			return &models.ValidationError{
				Field:   field,
				Message: "folder name must not be empty",
			}
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "console": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'console'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// ManagedFolderNames returns the folder names romsort itself creates.
// Scanning always skips these.
func (c *Config) ManagedFolderNames() []string {
	return []string{
		c.Folders.Delete,
		c.Folders.Review,
		c.Folders.Casino,
		c.Folders.Adult,
		c.Folders.Specials,
	}
}
