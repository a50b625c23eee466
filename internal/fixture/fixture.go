// Package fixture writes small Chrome and Firefox history databases with the
// browsers' real table layouts, for tests.
package fixture

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// ChromeVisit is one row of the Chrome visits table.
type ChromeVisit struct {
	Time       int64
	FromVisit  int64
	Transition int64
}

// ChromeURL is one row of the Chrome urls table with its visits. When
// LastVisitTime is zero it is taken from the latest visit.
type ChromeURL struct {
	URL           string
	Title         string
	TypedCount    int
	Hidden        bool
	LastVisitTime int64
	Visits        []ChromeVisit
}

// Place is one row of the Firefox moz_places table. An invalid
// LastVisitDate is stored as NULL, the way Firefox records never-visited
// places.
type Place struct {
	URL           string
	Title         string
	VisitCount    int
	LastVisitDate sql.NullInt64
	Frecency      int
}

// At is shorthand for a valid LastVisitDate.
func At(micros int64) sql.NullInt64 {
	return sql.NullInt64{Int64: micros, Valid: true}
}

// chromeSchema mirrors the tables of a Chromium "History" file that the
// extractor touches, plus meta.
var chromeSchema = []string{
	`CREATE TABLE meta (key LONGVARCHAR NOT NULL UNIQUE PRIMARY KEY, value LONGVARCHAR)`,
	`CREATE TABLE urls (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		url             LONGVARCHAR,
		title           LONGVARCHAR,
		visit_count     INTEGER DEFAULT 0 NOT NULL,
		typed_count     INTEGER DEFAULT 0 NOT NULL,
		last_visit_time INTEGER NOT NULL,
		hidden          INTEGER DEFAULT 0 NOT NULL
	)`,
	`CREATE TABLE visits (
		id                              INTEGER PRIMARY KEY AUTOINCREMENT,
		url                             INTEGER NOT NULL,
		visit_time                      INTEGER NOT NULL,
		from_visit                      INTEGER,
		transition                      INTEGER DEFAULT 0 NOT NULL,
		segment_id                      INTEGER,
		visit_duration                  INTEGER DEFAULT 0 NOT NULL,
		incremented_omnibox_typed_score BOOLEAN DEFAULT FALSE NOT NULL
	)`,
	`CREATE INDEX visits_url_index ON visits (url)`,
	`CREATE INDEX visits_time_index ON visits (visit_time)`,
	`INSERT INTO meta (key, value) VALUES ('version', '46'), ('last_compatible_version', '16')`,
}

// firefoxSchema mirrors moz_places and its neighbours from "places.sqlite".
var firefoxSchema = []string{
	`CREATE TABLE moz_origins (
		id       INTEGER PRIMARY KEY,
		prefix   TEXT NOT NULL,
		host     TEXT NOT NULL,
		frecency INTEGER NOT NULL,
		UNIQUE (prefix, host)
	)`,
	`CREATE TABLE moz_places (
		id                INTEGER PRIMARY KEY,
		url               LONGVARCHAR,
		title             LONGVARCHAR,
		rev_host          LONGVARCHAR,
		visit_count       INTEGER DEFAULT 0,
		hidden            INTEGER DEFAULT 0 NOT NULL,
		typed             INTEGER DEFAULT 0 NOT NULL,
		frecency          INTEGER DEFAULT -1 NOT NULL,
		last_visit_date   INTEGER,
		guid              TEXT,
		foreign_count     INTEGER DEFAULT 0 NOT NULL,
		url_hash          INTEGER DEFAULT 0 NOT NULL,
		description       TEXT,
		preview_image_url TEXT,
		origin_id         INTEGER REFERENCES moz_origins(id),
		site_name         TEXT
	)`,
	`CREATE TABLE moz_historyvisits (
		id          INTEGER PRIMARY KEY,
		from_visit  INTEGER,
		place_id    INTEGER,
		visit_date  INTEGER,
		visit_type  INTEGER,
		session     INTEGER,
		source      INTEGER DEFAULT 0 NOT NULL,
		triggeringPlaceId INTEGER
	)`,
	`CREATE INDEX moz_places_url_hashindex ON moz_places (url_hash)`,
	`CREATE INDEX moz_historyvisits_placedateindex ON moz_historyvisits (place_id, visit_date)`,
}

// WriteChrome creates a Chrome History database at path.
func WriteChrome(path string, urls []ChromeURL) error {
	return create(path, chromeSchema, func(tx *sql.Tx) error {
		for _, u := range urls {
			last := u.LastVisitTime
			if last == 0 {
				for _, v := range u.Visits {
					if v.Time > last {
						last = v.Time
					}
				}
			}

			res, err := tx.Exec(
				`INSERT INTO urls (url, title, visit_count, typed_count, last_visit_time, hidden)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				u.URL, u.Title, len(u.Visits), u.TypedCount, last, u.Hidden,
			)
			if err != nil {
				return fmt.Errorf("insert url %s: %w", u.URL, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for _, v := range u.Visits {
				if _, err := tx.Exec(
					`INSERT INTO visits (url, visit_time, from_visit, transition) VALUES (?, ?, ?, ?)`,
					id, v.Time, v.FromVisit, v.Transition,
				); err != nil {
					return fmt.Errorf("insert visit of %s: %w", u.URL, err)
				}
			}
		}
		return nil
	})
}

// WriteFirefox creates a Firefox places database at path.
func WriteFirefox(path string, places []Place) error {
	return create(path, firefoxSchema, func(tx *sql.Tx) error {
		for i, p := range places {
			if _, err := tx.Exec(
				`INSERT INTO moz_places (url, title, rev_host, visit_count, frecency, last_visit_date, guid)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.URL, p.Title, "", p.VisitCount, p.Frecency, p.LastVisitDate, fmt.Sprintf("guid%08d", i),
			); err != nil {
				return fmt.Errorf("insert place %s: %w", p.URL, err)
			}
		}
		return nil
	})
}

// WriteRaw creates a database at path by executing stmts, for layouts the
// typed writers cannot produce.
func WriteRaw(path string, stmts ...string) error {
	return create(path, stmts, nil)
}

// create applies schema and seed inside one transaction on a fresh file.
func create(path string, schema []string, seed func(tx *sql.Tx) error) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("fixture %s already exists", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if seed != nil {
		if err := seed(tx); err != nil {
			return err
		}
	}

	return tx.Commit()
}
