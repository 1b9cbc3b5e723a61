package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ShayCichocki/atabs/pkg/tabs"
)

// ErrUnknownKey is returned for a key that Keys does not list.
var ErrUnknownKey = errors.New("unknown config key")

// Key is one dot-notation setting that can be read and written from the CLI.
type Key struct {
	Name        string
	Description string

	value func(*Config) any
	set   func(*Config, string) error
}

var keys = []Key{
	stringKey("tabs.base_id", "prefix of generated group ids",
		func(c *Config) *string { return &c.Tabs.BaseID }),
	stringKey("tabs.default_tab_label", "label prefix of panels without a heading",
		func(c *Config) *string { return &c.Tabs.DefaultTabLabel }),
	stringKey("tabs.close_label", "accessible name of close controls",
		func(c *Config) *string { return &c.Tabs.CloseLabel }),
	stringKey("tabs.group_attribute", "attribute marking a tab group root",
		func(c *Config) *string { return &c.Tabs.GroupAttribute }),
	{
		Name:        "tabs.default_orientation",
		Description: "horizontal or vertical",
		value:       func(c *Config) any { return string(c.Tabs.DefaultOrientation) },
		set: func(c *Config, s string) error {
			o, ok := tabs.ParseOrientation(s)
			if !ok {
				return fmt.Errorf("invalid orientation %q: expected horizontal or vertical", s)
			}
			c.Tabs.DefaultOrientation = o
			return nil
		},
	},
	boolKey("tabs.manual", "require Enter or Space to activate a focused tab",
		func(c *Config) *bool { return &c.Tabs.Manual }),
	boolKey("tabs.closeable", "render a close control next to each tab",
		func(c *Config) *bool { return &c.Tabs.Closeable }),
	boolKey("tui.mouse", "enable mouse support in the viewer",
		func(c *Config) *bool { return &c.TUI.Mouse }),
	boolKey("tui.show_help", "show the key help line in the viewer",
		func(c *Config) *bool { return &c.TUI.ShowHelp }),
	{
		Name:        "state.driver",
		Description: "sqlite (pure Go) or sqlite3 (cgo)",
		value:       func(c *Config) any { return c.State.Driver },
		set: func(c *Config, s string) error {
			if s != "sqlite" && s != "sqlite3" {
				return fmt.Errorf("invalid driver %q: expected sqlite or sqlite3", s)
			}
			c.State.Driver = s
			return nil
		},
	},
	stringKey("state.path", "fragment database file",
		func(c *Config) *string { return &c.State.Path }),
	stringKey("logging.path", "debug log file, empty to disable",
		func(c *Config) *string { return &c.Logging.Path }),
}

func stringKey(name, desc string, field func(*Config) *string) Key {
	return Key{
		Name:        name,
		Description: desc,
		value:       func(c *Config) any { return *field(c) },
		set: func(c *Config, s string) error {
			*field(c) = s
			return nil
		},
	}
}

func boolKey(name, desc string, field func(*Config) *bool) Key {
	return Key{
		Name:        name,
		Description: desc,
		value:       func(c *Config) any { return *field(c) },
		set: func(c *Config, s string) error {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return fmt.Errorf("invalid value %q for %s: expected true or false", s, name)
			}
			*field(c) = b
			return nil
		},
	}
}

// Keys returns the settable keys sorted by name.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func lookup(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range keys {
		if k.Name == name {
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("%w: %s", ErrUnknownKey, name)
}

// Get returns the value of key in cfg formatted for display.
func Get(cfg *Config, key string) (string, error) {
	k, err := lookup(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(k.value(cfg)), nil
}

// Set parses value and stores it under key in cfg.
func Set(cfg *Config, key, value string) error {
	k, err := lookup(key)
	if err != nil {
		return err
	}
	return k.set(cfg, value)
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Source represents where a setting was loaded from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceConfig  Source = "config_file"
	SourceDefault Source = "default"
)

// SourceOf returns where the effective value of key came from.
func SourceOf(cfg *Config, key string) Source {
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return SourceEnv
	}

	k, err := lookup(key)
	if err != nil || cfg == nil {
		return SourceDefault
	}
	if fmt.Sprint(k.value(cfg)) != fmt.Sprint(k.value(Default())) {
		return SourceConfig
	}
	return SourceDefault
}
