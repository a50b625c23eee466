package cli

// GlobalFlags holds flags available to all subcommands. Empty values fall
// back to the config file.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file (YAML, or TOML with a .toml extension)" default:""`
	Format  string `long:"format" description:"Output format: text | json | csv"`
	JSON    bool   `long:"json" description:"Shortcut for --format json"`
	TZ      string `long:"tz" description:"Timezone for converted timestamps: local, utc or an IANA name"`
	Driver  string `long:"driver" description:"SQLite driver: sqlite3 (cgo) | sqlite (pure Go)"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ChromeCommand: extract visits from a Chrome History file.
type ChromeCommand struct {
	File string `long:"file" short:"f" description:"Path to the History file (default: browsers.chrome_history)"`

	globals *GlobalFlags
	version string
}

// FirefoxCommand: extract places from a Firefox places.sqlite file.
type FirefoxCommand struct {
	File string `long:"file" short:"f" description:"Path to places.sqlite (default: browsers.firefox_places)"`

	globals *GlobalFlags
	version string
}

// AutoCommand: detect the browser from the file's tables and extract.
type AutoCommand struct {
	File string `long:"file" short:"f" description:"Path to a browser history database (required)"`

	globals *GlobalFlags
	version string
}

// InfoCommand: summarize a history file without printing its rows.
type InfoCommand struct {
	File string `long:"file" short:"f" description:"Path to a browser history database (required)"`

	globals *GlobalFlags
	version string
}

// InitConfigCommand: write a default config file.
type InitConfigCommand struct {
	globals *GlobalFlags
	version string
}
