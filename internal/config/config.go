// Package config provides configuration management for gocalc.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/aryanc-04/gocalc/pkg/mathutil"
)

// DefaultFileName is the config file written by `gocalc config init`.
const DefaultFileName = ".gocalc.yaml"

// candidates are the file names Load probes when no explicit file is given.
var candidates = []string{".gocalc.yaml", ".gocalc.yml"}

// Config represents the configuration for gocalc.
type Config struct {
	// General settings
	Verbose bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	// Calculator settings
	Calc CalcConfig `yaml:"calc,omitempty" json:"calc,omitempty"`

	// Interactive session settings
	REPL REPLConfig `yaml:"repl,omitempty" json:"repl,omitempty"`

	// Operation journal settings
	History HistoryConfig `yaml:"history,omitempty" json:"history,omitempty"`
}

// CalcConfig contains calculator behavior settings.
type CalcConfig struct {
	Epsilon   float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	Precision int     `yaml:"precision,omitempty" json:"precision,omitempty"`
}

// REPLConfig contains interactive session settings.
type REPLConfig struct {
	ShowStatus  bool `yaml:"showStatus" json:"showStatus"`
	WatchConfig bool `yaml:"watchConfig" json:"watchConfig"`
}

// HistoryConfig contains operation journal settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	File    string `yaml:"file,omitempty" json:"file,omitempty"`
	Limit   int    `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Calc: CalcConfig{
			Epsilon:   mathutil.DefaultEpsilon,
			Precision: -1,
		},
		History: HistoryConfig{
			Enabled: true,
			File:    ".gocalc_history.json",
			Limit:   1000,
		},
	}
}

// Load loads configuration from file, falling back to defaults.
func Load(configFile string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), configFile)
}

// LoadFs is Load over an explicit filesystem.
func LoadFs(fsys afero.Fs, configFile string) (*Config, error) {
	cfg := Default()

	// If no config file specified, try default locations
	if configFile == "" {
		configFile = PathFs(fsys, "")
	}

	// If config file exists, load it
	if configFile != "" {
		if err := cfg.loadFromFile(fsys, configFile); err != nil {
			return nil, err
		}
	}

	// Validate and set defaults
	cfg.validate()

	return cfg, nil
}

// Path returns the file Load would read: the explicit file when given,
// otherwise the first existing default candidate, or "" when none exists.
func Path(configFile string) string {
	return PathFs(afero.NewOsFs(), configFile)
}

// PathFs is Path over an explicit filesystem.
func PathFs(fsys afero.Fs, configFile string) string {
	if configFile != "" {
		return configFile
	}

	for _, candidate := range candidates {
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

func (c *Config) loadFromFile(fsys afero.Fs, filename string) error {
	data, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// validate ensures the configuration has sensible values.
func (c *Config) validate() {
	if c.Calc.Epsilon <= 0 {
		c.Calc.Epsilon = mathutil.DefaultEpsilon
	}

	// Precision is significant digits for display; -1 means shortest.
	if c.Calc.Precision == 0 || c.Calc.Precision < -1 {
		c.Calc.Precision = -1
	}

	if c.History.File == "" {
		c.History.File = ".gocalc_history.json"
	}

	if c.History.Limit <= 0 {
		c.History.Limit = 1000
	}
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	return c.SaveFs(afero.NewOsFs(), filename)
}

// SaveFs is Save over an explicit filesystem.
func (c *Config) SaveFs(fsys afero.Fs, filename string) error {
	dir := filepath.Dir(filename)
	if err := fsys.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fsys, filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
