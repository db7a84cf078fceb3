// ABOUTME: Fuelcast configuration: data directory, body weight, and
// ABOUTME: recovery-window thresholds, with env-var overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/prometheusfit/fuelcast/internal/nutrition"
	"github.com/prometheusfit/fuelcast/internal/storage"
)

// DefaultBodyWeightKg is assumed until the user sets their weight.
const DefaultBodyWeightKg = 75.0

// Config stores fuelcast configuration.
type Config struct {
	// DataDir is the root directory for data storage: fuelcast.db plus the
	// state/ KV directory live here. Supports ~ expansion. Defaults to
	// ~/.local/share/fuelcast.
	DataDir string `json:"data_dir,omitempty" env:"FUELCAST_DATA_DIR"`

	// BodyWeightKg scales the macro recommendations.
	BodyWeightKg float64 `json:"body_weight_kg,omitempty" env:"FUELCAST_BODY_WEIGHT_KG"`

	// Recovery window boundaries, minutes since workout end.
	ImmediateWindowMin int `json:"immediate_window_min,omitempty" env:"FUELCAST_IMMEDIATE_WINDOW_MIN"`
	OptimalWindowMin   int `json:"optimal_window_min,omitempty" env:"FUELCAST_OPTIMAL_WINDOW_MIN"`
	ExtendedWindowMin  int `json:"extended_window_min,omitempty" env:"FUELCAST_EXTENDED_WINDOW_MIN"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the SQLite database path under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "fuelcast.db")
}

// StateDir returns the KV state directory under the data directory.
func (c *Config) StateDir() string {
	return filepath.Join(c.GetDataDir(), "state")
}

// GetBodyWeightKg returns the configured body weight, defaulting to 75 kg.
func (c *Config) GetBodyWeightKg() float64 {
	if c.BodyWeightKg <= 0 {
		return DefaultBodyWeightKg
	}
	return c.BodyWeightKg
}

// GetWindows returns the recovery windows, falling back to the defaults for
// any unset boundary.
func (c *Config) GetWindows() nutrition.Windows {
	w := nutrition.DefaultWindows
	if c.ImmediateWindowMin > 0 {
		w.ImmediateMin = c.ImmediateWindowMin
	}
	if c.OptimalWindowMin > 0 {
		w.OptimalMin = c.OptimalWindowMin
	}
	if c.ExtendedWindowMin > 0 {
		w.ExtendedMin = c.ExtendedWindowMin
	}
	return w
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fuelcast", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	path := GetConfigPath()
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env overrides: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
