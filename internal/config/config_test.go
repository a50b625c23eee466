package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sqlite3", cfg.Extract.Driver)
	assert.Equal(t, "local", cfg.Extract.Timezone)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "2006-01-02 15:04:05.000000", cfg.Output.TimeFormat)
	assert.Equal(t, 60, cfg.Output.MaxColumnWidth)
	assert.True(t, strings.HasPrefix(cfg.Browsers.ChromeHistory, "~"))
	assert.Empty(t, cfg.Browsers.FirefoxPlaces)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultChromeHistoryPerOS(t *testing.T) {
	assert.Contains(t, defaultChromeHistory("linux"), "google-chrome")
	assert.Contains(t, defaultChromeHistory("darwin"), "Application Support")
	assert.Contains(t, defaultChromeHistory("windows"), "User Data")
	for _, goos := range []string{"linux", "darwin", "windows"} {
		assert.Equal(t, "History", filepath.Base(defaultChromeHistory(goos)))
	}
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
extract:
  driver: "sqlite"
  timezone: "utc"
output:
  format: "json"
logging:
  level: "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "sqlite", cfg.Extract.Driver)
	assert.Equal(t, "utc", cfg.Extract.Timezone)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Non-overridden values remain defaults
	assert.Equal(t, 60, cfg.Output.MaxColumnWidth)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[extract]
timezone = "Europe/London"

[browsers]
firefox_places = "/evidence/places.sqlite"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", cfg.Extract.Timezone)
	assert.Equal(t, "/evidence/places.sqlite", cfg.Browsers.FirefoxPlaces)
	assert.Equal(t, "sqlite3", cfg.Extract.Driver)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	path := writeConfig(t, "config.yaml", ":::not valid yaml{{{")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidTOMLReturnsError(t *testing.T) {
	path := writeConfig(t, "config.toml", "[extract\ndriver = ")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"driver", "extract:\n  driver: postgres\n", "extract.driver"},
		{"timezone", "extract:\n  timezone: Mars/Olympus\n", "extract.timezone"},
		{"format", "output:\n  format: xml\n", "output.format"},
		{"width", "output:\n  max_column_width: -1\n", "max_column_width"},
		{"level", "logging:\n  level: loud\n", "logging.level"},
		{"log format", "logging:\n  format: xml\n", "logging.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, "config.yaml", tc.yaml)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := DefaultConfig()

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Extract.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	cfg.Extract.Timezone = "Europe/London"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", loc.String())
}

func TestLoadOrCreateCreatesDefaultsWhenMissing(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", "deep", name)

			cfg, err := LoadOrCreateAt(path)
			require.NoError(t, err)
			assert.Equal(t, "text", cfg.Output.Format)

			// File should now exist on disk
			_, statErr := os.Stat(path)
			assert.NoError(t, statErr)

			// and be loadable again
			cfg2, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, cfg2)
		})
	}
}

func TestLoadOrCreateLoadsExistingFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "output:\n  max_column_width: 0\n")

	cfg, err := LoadOrCreateAt(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Output.MaxColumnWidth)
	// Other fields remain defaults
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/History")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "History"), got)

	got, err = ExpandPath("/abs/History")
	require.NoError(t, err)
	assert.Equal(t, "/abs/History", got)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf, false)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "rows", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"rows":3`)

	buf.Reset()
	logger, err = LoggingConfig{Level: "warn", Format: "text"}.NewLogger(&buf, true)
	require.NoError(t, err)
	logger.Debug("verbose")
	assert.Contains(t, buf.String(), "msg=verbose")
}

func TestApplyOverridesOnlySetFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browsers.FirefoxPlaces = "/cases/places.sqlite"

	var o Config
	o.Output.Format = "csv"
	o.Extract.Timezone = "utc"
	require.NoError(t, cfg.Apply(o))

	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "utc", cfg.Extract.Timezone)
	assert.Equal(t, "sqlite3", cfg.Extract.Driver)
	assert.Equal(t, 60, cfg.Output.MaxColumnWidth)
	assert.Equal(t, "/cases/places.sqlite", cfg.Browsers.FirefoxPlaces)
}
