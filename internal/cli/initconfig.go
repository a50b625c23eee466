package cli

import (
	"fmt"

	"github.com/runnerr0/browserhist/internal/config"
)

// Execute implements the go-flags Commander interface for InitConfigCommand.
func (c *InitConfigCommand) Execute(args []string) error {
	if c.globals == nil || c.globals.Config == "" {
		if _, err := config.LoadOrCreate(); err != nil {
			return err
		}
		fmt.Printf("Config: %s\n", config.DefaultConfigPath)
		return nil
	}

	path, err := config.ExpandPath(c.globals.Config)
	if err != nil {
		return err
	}
	if _, err := config.LoadOrCreateAt(path); err != nil {
		return err
	}
	fmt.Printf("Config: %s\n", path)
	return nil
}
