// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration.
type Config struct {
	Seed    Seed    `yaml:"seed"`
	Display Display `yaml:"display"`
	Log     Log     `yaml:"log"`
	Search  Search  `yaml:"search"`
}

// Seed selects the contacts present at startup.
type Seed struct {
	Source string `yaml:"source"` // "default" | "empty" | path to YAML
}

// Display holds terminal output settings.
type Display struct {
	Plain     bool `yaml:"plain"`      // Never start the interactive UI
	AltScreen bool `yaml:"alt_screen"` // Run the interactive UI in the alternate screen
}

// Log holds activity log settings.
type Log struct {
	File string `yaml:"file"` // Append activity lines here; "" means stderr (TUI: off)
}

// Search holds fuzzy lookup settings.
type Search struct {
	MaxDistance int `yaml:"max_distance"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Seed: Seed{
			Source: "default",
		},
		Display: Display{
			AltScreen: true,
		},
		Search: Search{
			MaxDistance: 2,
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Seed.Source == "" {
		return errors.New("config: seed.source cannot be empty")
	}
	if c.Search.MaxDistance < 0 {
		return fmt.Errorf("config: search.max_distance must be non-negative, got %d", c.Search.MaxDistance)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTBOOK_SEED, CONTACTBOOK_LOG_FILE,
// CONTACTBOOK_SEARCH_MAX_DISTANCE.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTBOOK_SEED"); v != "" {
		c.Seed.Source = v
	}
	if v := os.Getenv("CONTACTBOOK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("CONTACTBOOK_SEARCH_MAX_DISTANCE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTBOOK_SEARCH_MAX_DISTANCE %q: %w", v, err)
		}
		c.Search.MaxDistance = n
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Seed    *rawSeed    `yaml:"seed"`
	Display *rawDisplay `yaml:"display"`
	Log     *rawLog     `yaml:"log"`
	Search  *rawSearch  `yaml:"search"`
}

type rawSeed struct {
	Source *string `yaml:"source"`
}

type rawDisplay struct {
	Plain     *bool `yaml:"plain"`
	AltScreen *bool `yaml:"alt_screen"`
}

type rawLog struct {
	File *string `yaml:"file"`
}

type rawSearch struct {
	MaxDistance *int `yaml:"max_distance"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Seed != nil && layer.Seed.Source != nil {
		c.Seed.Source = *layer.Seed.Source
	}
	if layer.Display != nil {
		if layer.Display.Plain != nil {
			c.Display.Plain = *layer.Display.Plain
		}
		if layer.Display.AltScreen != nil {
			c.Display.AltScreen = *layer.Display.AltScreen
		}
	}
	if layer.Log != nil && layer.Log.File != nil {
		c.Log.File = *layer.Log.File
	}
	if layer.Search != nil && layer.Search.MaxDistance != nil {
		c.Search.MaxDistance = *layer.Search.MaxDistance
	}
}
