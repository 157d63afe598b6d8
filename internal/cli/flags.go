package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/catalog"
	"github.com/mhoutman/romsort/pkg/config"
	"github.com/mhoutman/romsort/pkg/logging"
	"github.com/mhoutman/romsort/pkg/models"
	"github.com/mhoutman/romsort/pkg/output"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(
		&globalFlags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/romsort/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output",
	)
	cmd.PersistentFlags().BoolVarP(
		&globalFlags.Quiet,
		"quiet",
		"q",
		false,
		"suppress non-error output",
	)
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}

// runFlags holds the flags shared by scan, plan and apply.
type runFlags struct {
	Subfolders bool
	Exclude    []string
	Steps      string
	Output     string

	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

// addRunFlags binds the shared classification flags to a command.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().BoolVar(&f.Subfolders, "subfolders", false, "scan subfolders recursively")
	cmd.Flags().StringSliceVar(&f.Exclude, "exclude", nil, "extra directory names to skip")
	cmd.Flags().StringVar(&f.Steps, "steps", "", "comma-separated workflow steps (default: adult,casino,specials,regions,folders,duplicates)")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "output format: human, json")

	cmd.Flags().StringVar(&f.LogFile, "log-file", "", "write logs to file")
	cmd.Flags().StringVar(&f.LogFormat, "log-format", "", "log format: console, json")
	cmd.Flags().StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// loadConfig loads configuration from the --config file or the default
// location, then folds the shared flags into it.
func loadConfig(f *runFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if globalFlags.ConfigFile != "" {
		cfg, err = config.LoadFromFile(globalFlags.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f != nil {
		if err := applyRunFlags(cfg, f); err != nil {
			return nil, err
		}
	}
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
		cfg.Output.Progress = false
	}
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyRunFlags overrides config values with command-line flags.
func applyRunFlags(cfg *config.Config, f *runFlags) error {
	if f.Subfolders {
		cfg.Scan.Subfolders = true
	}
	if len(f.Exclude) > 0 {
		cfg.Scan.Exclude = append(cfg.Scan.Exclude, f.Exclude...)
	}
	if f.Steps != "" {
		steps, err := models.ParseSteps(f.Steps)
		if err != nil {
			return err
		}
		cfg.Workflow.Steps = steps
	}
	if f.Output != "" {
		cfg.Output.Format = f.Output
	}
	if f.LogFile != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.File = f.LogFile
	}
	if f.LogFormat != "" {
		cfg.Logging.Format = f.LogFormat
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	return nil
}

// newLogger builds the logger the configuration asks for.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NewNullLogger(), nil
	}
	return logging.New(logging.Options{
		Format:     cfg.Logging.Format,
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}

// newFormatter builds the output formatter the configuration asks for.
func newFormatter(cfg *config.Config, w io.Writer) output.Formatter {
	if w == nil {
		w = os.Stdout
	}
	switch {
	case cfg.Output.Format == "json":
		return output.NewJSONFormatter(w)
	case cfg.Output.Quiet:
		return output.NewHumanFormatter(io.Discard)
	case cfg.Output.Progress:
		return output.NewProgressFormatter(w)
	default:
		return output.NewHumanFormatter(w)
	}
}

// openCatalog opens the run-history store, or returns nil when the
// catalog is disabled.
func openCatalog(cfg *config.Config) (*catalog.Store, error) {
	if !cfg.Catalog.Enabled {
		return nil, nil
	}
	path := cfg.Catalog.Path
	if path == "" {
		var err error
		path, err = config.DefaultCatalogPath()
		if err != nil {
			return nil, err
		}
	}
	return catalog.Open(path)
}

// resolveRoot validates the positional root directory argument.
func resolveRoot(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one directory argument")
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", args[0], err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", args[0])
	}
	return args[0], nil
}
