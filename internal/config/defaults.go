package config

import (
	"path/filepath"
	"runtime"

	"github.com/runnerr0/browserhist/internal/history"
)

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Driver:   history.DriverCGO,
			Timezone: "local",
		},
		Output: OutputConfig{
			Format:         "text",
			TimeFormat:     "2006-01-02 15:04:05.000000",
			MaxColumnWidth: 60,
		},
		Browsers: BrowsersConfig{
			ChromeHistory: defaultChromeHistory(runtime.GOOS),
			FirefoxPlaces: "",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultChromeHistory returns the Default profile's History file for goos.
// Firefox profiles have random directory names, so there is no Firefox
// equivalent.
func defaultChromeHistory(goos string) string {
	switch goos {
	case "darwin":
		return filepath.Join("~", "Library", "Application Support", "Google", "Chrome", "Default", "History")
	case "windows":
		return filepath.Join("~", "AppData", "Local", "Google", "Chrome", "User Data", "Default", "History")
	default:
		return filepath.Join("~", ".config", "google-chrome", "Default", "History")
	}
}
