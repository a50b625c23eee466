package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/runnerr0/browserhist/internal/config"
	"github.com/runnerr0/browserhist/internal/history"
)

// minColumnWidth bounds how far text columns shrink to fit the terminal.
const minColumnWidth = 8

// renderTable writes t in the configured format. termWidth of 0 means the
// output is not a terminal and text columns are only capped by
// MaxColumnWidth.
func renderTable(w io.Writer, t *history.Table, out config.OutputConfig, termWidth int) error {
	switch out.Format {
	case "json":
		return renderJSON(w, t)
	case "csv":
		return renderCSV(w, t, out.TimeFormat)
	default:
		return renderText(w, t, out, termWidth)
	}
}

// formatCell renders one value for text and CSV output.
func formatCell(v any, timeFormat string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(timeFormat)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func renderText(w io.Writer, t *history.Table, out config.OutputConfig, termWidth int) error {
	names := t.Names()
	cells := make([][]string, t.Len())
	widths := make([]int, len(names))
	for i, n := range names {
		widths[i] = runewidth.StringWidth(n)
	}
	for r := range cells {
		row := t.Row(r)
		cells[r] = make([]string, len(row))
		for c, v := range row {
			s := strings.ReplaceAll(formatCell(v, out.TimeFormat), "\n", " ")
			cells[r][c] = s
			if sw := runewidth.StringWidth(s); sw > widths[c] {
				widths[c] = sw
			}
		}
	}

	fitWidths(widths, out.MaxColumnWidth, termWidth)

	line := func(vals []string) error {
		parts := make([]string, len(vals))
		for i, v := range vals {
			v = runewidth.Truncate(v, widths[i], "…")
			if i < len(vals)-1 {
				v = runewidth.FillRight(v, widths[i])
			}
			parts[i] = v
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := line(names); err != nil {
		return err
	}
	for _, row := range cells {
		if err := line(row); err != nil {
			return err
		}
	}
	return nil
}

// fitWidths caps every column at maxWidth, then narrows the widest column
// until the row fits termWidth or nothing is wider than minColumnWidth.
func fitWidths(widths []int, maxWidth, termWidth int) {
	if maxWidth > 0 {
		for i := range widths {
			if widths[i] > maxWidth {
				widths[i] = maxWidth
			}
		}
	}
	if termWidth <= 0 {
		return
	}

	for {
		total := 2 * (len(widths) - 1)
		widest := 0
		for i, wd := range widths {
			total += wd
			if wd > widths[widest] {
				widest = i
			}
		}
		if total <= termWidth || widths[widest] <= minColumnWidth {
			return
		}
		widths[widest] = max(minColumnWidth, widths[widest]-(total-termWidth))
	}
}

type jsonTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// renderJSON keeps column order by emitting rows as arrays. Timestamps use
// RFC 3339 with their offset so the instant is unambiguous.
func renderJSON(w io.Writer, t *history.Table) error {
	out := jsonTable{Columns: t.Names(), Rows: make([][]any, t.Len())}
	for r := range out.Rows {
		row := t.Row(r)
		for c, v := range row {
			switch x := v.(type) {
			case time.Time:
				row[c] = x.Format(time.RFC3339Nano)
			case []byte:
				row[c] = string(x)
			}
		}
		out.Rows[r] = row
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, t *history.Table, timeFormat string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	for r := 0; r < t.Len(); r++ {
		row := t.Row(r)
		rec := make([]string, len(row))
		for c, v := range row {
			rec[c] = formatCell(v, timeFormat)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
