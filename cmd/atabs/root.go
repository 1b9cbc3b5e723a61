package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/atabs/internal/config"
	"github.com/ShayCichocki/atabs/internal/logging"
	"github.com/ShayCichocki/atabs/internal/state"
)

var (
	cfgFile   string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "atabs",
	Short: "Accessible tab groups for HTML documents",
	Long: `atabs turns marked-up sections of an HTML document into accessible
tab groups and lets you browse them from the terminal.

A tab group is any element carrying the group attribute (data-atabs by
default). Each direct child carrying the panel attribute becomes a tab.
Documents may also be described as YAML manifests (.yaml or .yml).

Core capabilities:
- Keyboard navigation following the ARIA tabs pattern
- Fragment sync so a #tab-id selects and remembers a tab
- Optional persistence of fragments and history in SQLite
- Rendering the enhanced markup back to HTML`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Read configuration from this file only")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write a debug log to .atabs/logs")

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the layered configuration, or only --config when set.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromPath(cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openLogger opens the debug log named by logging.path. With --debug and
// no configured path the log goes to .atabs/logs.
func openLogger(cfg *config.Config) (*logging.DebugLogger, error) {
	path := cfg.Logging.Path
	if path == "" && debugFlag {
		path = filepath.Join(".atabs", "logs", "atabs-debug.log")
	}
	return logging.NewDebugLogger(path)
}

// statePath picks the fragment database: the configured path, then the
// project database when the directory was set up with init, then the
// global one.
func statePath(cfg *config.Config) string {
	if cfg.State.Path != "" {
		return cfg.State.Path
	}
	if cwd, err := os.Getwd(); err == nil {
		if _, err := os.Stat(filepath.Join(cwd, ".atabs")); err == nil {
			return state.ProjectDBPath(cwd)
		}
	}
	return state.GlobalDBPath()
}

// openStore opens and migrates the fragment database.
func openStore(cfg *config.Config) (*state.DB, error) {
	db, err := state.OpenDriver(cfg.State.Driver, statePath(cfg))
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// documentKey identifies a document in the fragment database.
func documentKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return abs, nil
}
