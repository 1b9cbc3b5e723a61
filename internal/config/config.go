// Package config handles configuration loading and management for atabs.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// EnvPrefix prefixes environment overrides, e.g. ATABS_TABS_MANUAL.
const EnvPrefix = "ATABS"

// Config holds all configuration for atabs.
type Config struct {
	Tabs    tabs.Options  `mapstructure:"tabs"`
	TUI     TUIConfig     `mapstructure:"tui"`
	State   StateConfig   `mapstructure:"state"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	Mouse    bool `mapstructure:"mouse"`
	ShowHelp bool `mapstructure:"show_help"`
}

// StateConfig selects where fragments are persisted.
type StateConfig struct {
	// Driver is the database/sql driver name, "sqlite" or "sqlite3".
	Driver string `mapstructure:"driver"`
	// Path is the database file. Empty means the XDG data directory.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds debug log settings.
type LoggingConfig struct {
	// Path of the debug log. Empty disables logging.
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ATABS_<SECTION>_<KEY>)
// 2. Project config (.atabs.yaml in current directory or parent)
// 3. User config (~/.config/atabs/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	bindEnv(v)
	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Tabs = cfg.Tabs.Normalize()
	cfg.State.Path = expandEnv(cfg.State.Path)
	cfg.Logging.Path = expandEnv(cfg.Logging.Path)
	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	return SaveTo(GetUserConfigPath(), cfg)
}

// SaveTo writes every key Keys lists to the yaml file at path. Other
// settings already in the file are kept.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	}
	for _, k := range Keys() {
		v.Set(k.Name, k.value(cfg))
	}

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	def := Default()
	for _, k := range Keys() {
		v.SetDefault(k.Name, k.value(def))
	}
}

// getUserConfigDir returns the XDG config directory for atabs.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "atabs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "atabs")
	}
	return filepath.Join(home, ".config", "atabs")
}

// findProjectConfig searches for .atabs.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".atabs.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Tabs: tabs.DefaultOptions(),
		TUI: TUIConfig{
			Mouse:    true,
			ShowHelp: true,
		},
		State: StateConfig{
			Driver: "sqlite",
		},
	}
}
