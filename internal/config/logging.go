package config

import (
	"fmt"
	"io"
	"log/slog"
)

func (c LoggingConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("invalid logging.level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// NewLogger builds a slog.Logger writing to w. Verbose forces debug level.
func (c LoggingConfig) NewLogger(w io.Writer, verbose bool) (*slog.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch c.Format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid logging.format %q (want text or json)", c.Format)
	}
}
