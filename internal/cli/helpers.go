package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/runnerr0/browserhist/internal/config"
	"github.com/runnerr0/browserhist/internal/history"
)

// env is the resolved configuration shared by the extraction commands.
type env struct {
	cfg       *config.Config
	extractor *history.Extractor
	logger    *slog.Logger
}

// loadEnv reads the config named by --config, or the default config file
// when it exists, applies flag overrides and builds the extractor.
func loadEnv(g *GlobalFlags) (*env, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, err
	}

	if g != nil {
		var o config.Config
		o.Output.Format = g.Format
		if g.JSON {
			o.Output.Format = "json"
		}
		o.Extract.Timezone = g.TZ
		o.Extract.Driver = g.Driver
		if err := cfg.Apply(o); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger, err := cfg.Logging.NewLogger(os.Stderr, g != nil && g.Verbose)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:       cfg,
		extractor: history.NewExtractor(history.WithDriver(cfg.Extract.Driver), history.WithLocation(loc)),
		logger:    logger,
	}, nil
}

func loadConfig(g *GlobalFlags) (*config.Config, error) {
	if g != nil && g.Config != "" {
		path, err := config.ExpandPath(g.Config)
		if err != nil {
			return nil, err
		}
		return config.Load(path)
	}

	path, err := config.ExpandPath(config.DefaultConfigPath)
	if err != nil {
		return config.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// resolveFile picks the history file from --file, the first positional
// argument, or the configured fallback, in that order.
func resolveFile(flag string, args []string, fallback string) (string, error) {
	path := flag
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = fallback
	}
	if path == "" {
		return "", fmt.Errorf("--file is required")
	}
	return config.ExpandPath(path)
}

// extract runs d against path and logs the outcome.
func (e *env) extract(d history.Descriptor, path string) (*history.Table, error) {
	e.logger.Debug("extracting", "browser", d.Browser, "path", path, "driver", e.cfg.Extract.Driver)

	t, err := e.extractor.Extract(context.Background(), d, path)
	if err != nil {
		return nil, fmt.Errorf("%s extraction failed: %w", d.Browser, err)
	}

	e.logger.Debug("extracted", "browser", d.Browser, "rows", t.Len(), "columns", strings.Join(t.Names(), ","))
	return t, nil
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		if len(s) > remainder {
			result.WriteString(",")
		}
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
