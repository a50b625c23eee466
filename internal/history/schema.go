package history

// Requirement lists the columns a descriptor needs from one table.
type Requirement struct {
	Table   string
	Columns []string
}

// Descriptor tells the pipeline how to read one browser's history file.
type Descriptor struct {
	// Browser is a short lowercase name, e.g. "chrome".
	Browser string

	// Requires is checked before Query runs.
	Requires []Requirement

	// Query is executed as-is; its result column order is canonical.
	Query string

	// Timestamps are converted in order. Each column is removed and
	// reinserted at the index it holds at the time of its own conversion.
	Timestamps []string

	Epoch Epoch

	// Project, when set, reduces the normalized table to these columns in
	// this order.
	Project []string
}

// Chrome reads the urls/visits join from a Chromium "History" file. One row
// per visit; url-level fields repeat for every visit of the same url.
var Chrome = Descriptor{
	Browser: "chrome",
	Requires: []Requirement{
		{Table: "urls", Columns: []string{"id", "url", "title", "visit_count", "typed_count", "last_visit_time", "hidden"}},
		{Table: "visits", Columns: []string{"url", "visit_time", "from_visit", "transition"}},
	},
	Query: `SELECT urls.url, urls.title, urls.visit_count, urls.typed_count,
		urls.last_visit_time, urls.hidden,
		visits.visit_time, visits.from_visit, visits.transition
		FROM urls, visits
		WHERE urls.id = visits.url`,
	Timestamps: []string{"last_visit_time", "visit_time"},
	Epoch:      ChromeEpoch,
}

// Firefox reads moz_places from a "places.sqlite" file, reduced to the
// last visit, visit count and url of every place.
var Firefox = Descriptor{
	Browser: "firefox",
	Requires: []Requirement{
		{Table: "moz_places", Columns: []string{"url", "visit_count", "last_visit_date"}},
	},
	Query:      `SELECT * FROM moz_places`,
	Timestamps: []string{"last_visit_date"},
	Epoch:      FirefoxEpoch,
	Project:    []string{"last_visit_date", "visit_count", "url"},
}

// Descriptors returns the built-in descriptors in detection order.
func Descriptors() []Descriptor {
	return []Descriptor{Chrome, Firefox}
}

// Lookup returns the built-in descriptor for browser.
func Lookup(browser string) (Descriptor, bool) {
	for _, d := range Descriptors() {
		if d.Browser == browser {
			return d, true
		}
	}
	return Descriptor{}, false
}
