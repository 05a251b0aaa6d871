// Package config loads the omnibar engine's configuration from YAML with
// environment-variable overrides, following the teacher's
// defaults-then-file-then-env layering.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tunables for the omnibar engine.
type Config struct {
	// Cache controls the Application Cache's background refresher.
	Cache CacheConfig `yaml:"cache"`

	// Scan lists the .desktop scan roots for AppRepository.
	Scan ScanConfig `yaml:"scan"`

	// Store points at the shortcut/macro persistence files.
	Store StoreConfig `yaml:"store"`

	// Executor controls command-dispatch policy.
	Executor ExecutorConfig `yaml:"executor"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// CacheConfig tunes the Application Cache refresher.
type CacheConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// ScanConfig lists filesystem roots to search for .desktop files.
type ScanConfig struct {
	Roots []string `yaml:"roots"`
}

// StoreConfig points at the shortcut/macro store locations.
type StoreConfig struct {
	MacroPath    string `yaml:"macro_path"`
	ShortcutPath string `yaml:"shortcut_path"`
}

// ExecutorConfig controls how non-internal exec strings are dispatched.
type ExecutorConfig struct {
	// Shell, when true (the reference policy), passes exec strings to
	// `sh -c`. When false, the first whitespace token is exec'd directly
	// with the remainder as argv.
	Shell bool `yaml:"shell"`
}

// Default returns the engine's default configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Cache: CacheConfig{
			RefreshInterval: 2 * time.Second,
		},
		Scan: ScanConfig{
			Roots: []string{
				"/usr/share/applications",
				"/usr/local/share/applications",
				home + "/.local/share/applications",
			},
		},
		Store: StoreConfig{
			MacroPath:    home + "/.config/omnibar/macros.json",
			ShortcutPath: home + "/.config/omnibar/shortcuts.json",
		},
		Executor: ExecutorConfig{
			Shell: true,
		},
		Verbose: false,
	}
}

// Load reads a YAML config file on top of Default(), then applies
// environment-variable overrides. A missing file is not an error; the
// defaults (possibly env-overridden) are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides mirrors the teacher's env_override_test.go pattern:
// OMNIBAR_<FIELD> wins over file and default values when set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OMNIBAR_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.RefreshInterval = d
		}
	}
	if v := os.Getenv("OMNIBAR_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	if v := os.Getenv("OMNIBAR_MACRO_PATH"); v != "" {
		cfg.Store.MacroPath = v
	}
	if v := os.Getenv("OMNIBAR_SHORTCUT_PATH"); v != "" {
		cfg.Store.ShortcutPath = v
	}
	if v := os.Getenv("OMNIBAR_EXECUTOR_SHELL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Executor.Shell = b
		}
	}
}
