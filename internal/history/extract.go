package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// database/sql driver names.
const (
	DriverCGO  = "sqlite3" // github.com/mattn/go-sqlite3
	DriverPure = "sqlite"  // modernc.org/sqlite
)

// Drivers returns the supported driver names, default first.
func Drivers() []string {
	return []string{DriverCGO, DriverPure}
}

// Extractor runs descriptors against history files. The zero value is not
// usable; construct one with NewExtractor.
type Extractor struct {
	driver string
	loc    *time.Location
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDriver selects the database/sql driver.
func WithDriver(name string) Option {
	return func(e *Extractor) { e.driver = name }
}

// WithLocation sets the location converted timestamps are expressed in.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewExtractor returns an Extractor using the cgo driver and local time
// unless configured otherwise.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{driver: DriverCGO, loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ChromeVisits extracts every visit from a Chrome "History" file.
func ChromeVisits(path string) (*Table, error) {
	return NewExtractor().Extract(context.Background(), Chrome, path)
}

// FirefoxVisits extracts every place from a Firefox "places.sqlite" file.
func FirefoxVisits(path string) (*Table, error) {
	return NewExtractor().Extract(context.Background(), Firefox, path)
}

// Extract opens path read-only, checks it against d, runs d.Query and
// returns the normalized table. The database is closed before returning.
func (e *Extractor) Extract(ctx context.Context, d Descriptor, path string) (*Table, error) {
	db, err := e.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := checkSchema(ctx, db, d.Requires); err != nil {
		return nil, err
	}

	t, err := queryTable(ctx, db, d.Query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Browser, err)
	}

	for _, name := range d.Timestamps {
		if err := e.normalize(t, name, d.Epoch); err != nil {
			return nil, err
		}
	}

	if len(d.Project) > 0 {
		return t.Project(d.Project...)
	}
	return t, nil
}

// Detect returns the first built-in descriptor whose tables and columns are
// all present in path.
func (e *Extractor) Detect(ctx context.Context, path string) (Descriptor, error) {
	db, err := e.open(ctx, path)
	if err != nil {
		return Descriptor{}, err
	}
	defer db.Close()

	for _, d := range Descriptors() {
		err := checkSchema(ctx, db, d.Requires)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, ErrSchema) {
			return Descriptor{}, err
		}
	}
	return Descriptor{}, fmt.Errorf("%w: no known browser tables in %s", ErrSchema, path)
}

// open verifies that path is a readable SQLite file and returns a
// single-connection read-only handle.
func (e *Extractor) open(ctx context.Context, path string) (*sql.DB, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &OpenError{Path: path, Err: errors.New("is a directory")}
	}

	// Surface permission errors before the driver turns them into
	// "unable to open database file".
	f, err := os.Open(abs)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	f.Close()

	db, err := sql.Open(e.driver, readOnlyDSN(abs))
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	db.SetMaxOpenConns(1)

	// Forces a read of the database header.
	var version int64
	if err := db.QueryRowContext(ctx, "PRAGMA schema_version").Scan(&version); err != nil {
		db.Close()
		return nil, &OpenError{Path: path, Err: err}
	}

	return db, nil
}

// readOnlyDSN builds a SQLite URI filename opening path with mode=ro.
func readOnlyDSN(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}

// checkSchema verifies every required table and column exists.
func checkSchema(ctx context.Context, db *sql.DB, reqs []Requirement) error {
	for _, req := range reqs {
		cols, err := tableColumns(ctx, db, req.Table)
		if err != nil {
			return fmt.Errorf("inspect table %s: %w", req.Table, err)
		}
		if len(cols) == 0 {
			return &SchemaError{Table: req.Table}
		}
		for _, c := range req.Columns {
			if !cols[c] {
				return &SchemaError{Table: req.Table, Column: c}
			}
		}
	}
	return nil
}

// tableColumns returns the column names of table; empty if it does not
// exist.
func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// queryTable runs query and materializes every row.
func queryTable(ctx context.Context, db *sql.DB, query string) (*Table, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var data [][]any
	for rows.Next() {
		vals := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(data), err)
		}
		data = append(data, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	return NewTable(names, data)
}

// normalize replaces the raw values of the named column with timestamps,
// keeping the column at the index it currently occupies. NULL cells stay
// nil.
func (e *Extractor) normalize(t *Table, name string, epoch Epoch) error {
	i := t.Index(name)
	if i < 0 {
		return &SchemaError{Column: name}
	}
	raw, err := t.Remove(i)
	if err != nil {
		return err
	}

	conv := Column{Name: name, Values: make([]any, len(raw.Values))}
	for r, v := range raw.Values {
		if v == nil {
			continue
		}
		n, ok := asInt64(v)
		if !ok {
			return &ConversionError{Column: name, Row: r, Value: v}
		}
		conv.Values[r] = epoch.Time(n).In(e.loc)
	}

	return t.Insert(i, conv)
}

// asInt64 accepts the integer representations SQLite drivers hand back.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case []byte:
		i, err := strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
		return i, err == nil
	}
	return 0, false
}
