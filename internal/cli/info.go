package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/browserhist/internal/config"
	"github.com/runnerr0/browserhist/internal/history"
)

// infoJSON is the JSON output structure for the info command.
type infoJSON struct {
	Version    string   `json:"version"`
	Path       string   `json:"path"`
	SizeBytes  int64    `json:"size_bytes"`
	Browser    string   `json:"browser"`
	Rows       int      `json:"rows"`
	Columns    []string `json:"columns"`
	Timestamps []string `json:"timestamp_columns"`
	Earliest   string   `json:"earliest,omitempty"`
	Latest     string   `json:"latest,omitempty"`
}

// summary is what info reports about one history file.
type summary struct {
	Path      string
	SizeBytes int64
	Browser   history.Descriptor
	Rows      int
	Columns   []string
	Earliest  time.Time
	Latest    time.Time
}

// Execute implements the go-flags Commander interface for InfoCommand.
func (c *InfoCommand) Execute(args []string) error {
	e, err := loadEnv(c.globals)
	if err != nil {
		return err
	}
	path, err := resolveFile(c.File, args, "")
	if err != nil {
		return err
	}

	s, err := e.summarize(path)
	if err != nil {
		return err
	}

	if e.cfg.Output.Format == "json" {
		return c.printInfoJSON(s)
	}
	return c.printInfoHuman(s, e.cfg.Output)
}

// summarize detects the browser of path, extracts it and scans the
// timestamp columns for the covered time range.
func (e *env) summarize(path string) (*summary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &history.OpenError{Path: path, Err: err}
	}

	d, err := e.extractor.Detect(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("detect browser: %w", err)
	}

	t, err := e.extract(d, path)
	if err != nil {
		return nil, err
	}

	s := &summary{
		Path:      path,
		SizeBytes: info.Size(),
		Browser:   d,
		Rows:      t.Len(),
		Columns:   t.Names(),
	}
	for _, name := range d.Timestamps {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		for _, v := range col.Values {
			ts, ok := v.(time.Time)
			if !ok {
				continue
			}
			if s.Earliest.IsZero() || ts.Before(s.Earliest) {
				s.Earliest = ts
			}
			if s.Latest.IsZero() || ts.After(s.Latest) {
				s.Latest = ts
			}
		}
	}
	return s, nil
}

func (c *InfoCommand) printInfoHuman(s *summary, out config.OutputConfig) error {
	fmt.Println("History File")
	fmt.Println("============")
	fmt.Printf("Path:          %s (%s)\n", s.Path, formatBytes(s.SizeBytes))
	fmt.Printf("Browser:       %s\n", s.Browser.Browser)
	fmt.Printf("Rows:          %s\n", formatNumber(int64(s.Rows)))

	if !s.Earliest.IsZero() {
		fmt.Printf("Earliest:      %s\n", s.Earliest.Format(out.TimeFormat))
		fmt.Printf("Latest:        %s\n", s.Latest.Format(out.TimeFormat))
	}

	fmt.Println()
	fmt.Println("Columns:")
	for _, name := range s.Columns {
		fmt.Printf("  %s\n", name)
	}

	return nil
}

func (c *InfoCommand) printInfoJSON(s *summary) error {
	out := infoJSON{
		Version:    c.version,
		Path:       s.Path,
		SizeBytes:  s.SizeBytes,
		Browser:    s.Browser.Browser,
		Rows:       s.Rows,
		Columns:    s.Columns,
		Timestamps: s.Browser.Timestamps,
	}

	if !s.Earliest.IsZero() {
		out.Earliest = s.Earliest.Format(time.RFC3339Nano)
		out.Latest = s.Latest.Format(time.RFC3339Nano)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
