package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/atabs/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify atabs configuration.

Without arguments, displays every setting with where it came from.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/atabs/config.yaml
Project-specific overrides can be placed in .atabs.yaml
Every key can be overridden from the environment, e.g. ATABS_TABS_MANUAL=true`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		switch len(args) {
		case 0:
			displayAllConfig(cmd, cfg)
			return nil
		case 1:
			value, err := config.Get(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		default:
			return setConfigKey(cmd, cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	for _, k := range config.Keys() {
		value, _ := config.Get(cfg, k.Name)
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(out, "%-26s %-20s [%s]\n", k.Name+":", value, config.SourceOf(cfg, k.Name))
	}
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cmd *cobra.Command, cfg *config.Config, key, value string) error {
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
