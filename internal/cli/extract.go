package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/runnerr0/browserhist/internal/history"
)

// Execute implements the go-flags Commander interface for ChromeCommand.
func (c *ChromeCommand) Execute(args []string) error {
	e, err := loadEnv(c.globals)
	if err != nil {
		return err
	}
	path, err := resolveFile(c.File, args, e.cfg.Browsers.ChromeHistory)
	if err != nil {
		return err
	}
	return e.run(history.Chrome, path)
}

// Execute implements the go-flags Commander interface for FirefoxCommand.
func (c *FirefoxCommand) Execute(args []string) error {
	e, err := loadEnv(c.globals)
	if err != nil {
		return err
	}
	path, err := resolveFile(c.File, args, e.cfg.Browsers.FirefoxPlaces)
	if err != nil {
		return fmt.Errorf("%w for firefox (no browsers.firefox_places configured)", err)
	}
	return e.run(history.Firefox, path)
}

// Execute implements the go-flags Commander interface for AutoCommand.
func (c *AutoCommand) Execute(args []string) error {
	e, err := loadEnv(c.globals)
	if err != nil {
		return err
	}
	path, err := resolveFile(c.File, args, "")
	if err != nil {
		return err
	}

	d, err := e.extractor.Detect(context.Background(), path)
	if err != nil {
		return fmt.Errorf("detect browser: %w", err)
	}
	e.logger.Info("detected browser", "browser", d.Browser, "path", path)

	return e.run(d, path)
}

// run extracts path with d and prints the table to stdout.
func (e *env) run(d history.Descriptor, path string) error {
	t, err := e.extract(d, path)
	if err != nil {
		return err
	}
	return renderTable(os.Stdout, t, e.cfg.Output, terminalWidth())
}
