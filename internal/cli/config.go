package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhoutman/romsort/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View, create or validate the romsort configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}

			steps := make([]string, len(cfg.Workflow.Steps))
			for i, s := range cfg.Workflow.Steps {
				steps[i] = string(s)
			}

			fmt.Printf("Region Priority: %s\n", strings.Join(cfg.Regions.Priority, ", "))
			fmt.Printf("Main Regions: %s\n", strings.Join(cfg.Regions.Main, ", "))
			fmt.Printf("Default Region: %s\n", cfg.Regions.Default)
			fmt.Printf("Version Detection: %t\n", cfg.Versions.Detect)
			fmt.Printf("Older Version Action: %s\n", cfg.Versions.OlderAction)
			fmt.Printf("Workflow Steps: %s\n", strings.Join(steps, ", "))
			fmt.Printf("Scan Subfolders: %t\n", cfg.Scan.Subfolders)
			fmt.Printf("Delete Folder: %s\n", cfg.Folders.Delete)
			fmt.Printf("Review Folder: %s\n", cfg.Folders.Review)
			fmt.Printf("Output Format: %s\n", cfg.Output.Format)
			fmt.Printf("Log Format: %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level: %s\n", cfg.Logging.Level)
			fmt.Printf("Catalog Enabled: %t\n", cfg.Catalog.Enabled)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globalFlags.ConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			if _, err := config.LoadFromFile(path); err != nil {
				return err
			}

			fmt.Printf("Configuration is valid: %s\n", path)
			return nil
		},
	}
}
