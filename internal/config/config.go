package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"

	"github.com/runnerr0/browserhist/internal/history"
)

// Default config file path.
const DefaultConfigPath = "~/.config/browserhist/config.yaml"

// Config holds all browserhist configuration.
type Config struct {
	Extract  ExtractConfig  `yaml:"extract" toml:"extract"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Browsers BrowsersConfig `yaml:"browsers" toml:"browsers"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

type ExtractConfig struct {
	Driver   string `yaml:"driver" toml:"driver"`
	Timezone string `yaml:"timezone" toml:"timezone"`
}

type OutputConfig struct {
	Format         string `yaml:"format" toml:"format"`
	TimeFormat     string `yaml:"time_format" toml:"time_format"`
	MaxColumnWidth int    `yaml:"max_column_width" toml:"max_column_width"`
}

// BrowsersConfig holds the history files used when no --file is given.
type BrowsersConfig struct {
	ChromeHistory string `yaml:"chrome_history" toml:"chrome_history"`
	FirefoxPlaces string `yaml:"firefox_places" toml:"firefox_places"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Output formats.
var Formats = []string{"text", "json", "csv"}

// Load reads a YAML or TOML config file at path and merges it with
// defaults. Files ending in .toml are parsed as TOML, everything else as
// YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply overlays the non-empty fields of o onto c.
func (c *Config) Apply(o Config) error {
	if err := mergo.Merge(c, o, mergo.WithOverride); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(history.Drivers(), c.Extract.Driver) {
		return fmt.Errorf("invalid extract.driver %q (want one of %s)", c.Extract.Driver, strings.Join(history.Drivers(), ", "))
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("invalid output.format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Output.MaxColumnWidth < 0 {
		return fmt.Errorf("invalid output.max_column_width %d", c.Output.MaxColumnWidth)
	}
	if _, err := c.Logging.NewLogger(io.Discard, false); err != nil {
		return err
	}
	return nil
}

// Location resolves extract.timezone: "local", "utc" or an IANA name.
func (c *Config) Location() (*time.Location, error) {
	switch strings.ToLower(c.Extract.Timezone) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Extract.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid extract.timezone %q: %w", c.Extract.Timezone, err)
	}
	return loc, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := ExpandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := marshal(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

func marshal(path string, cfg *Config) ([]byte, error) {
	if !isTOML(path) {
		return yaml.Marshal(cfg)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
