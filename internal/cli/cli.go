package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Chrome     *ChromeCommand
	Firefox    *FirefoxCommand
	Auto       *AutoCommand
	Info       *InfoCommand
	InitConfig *InitConfigCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "browserhist"
	parser.LongDescription = "Extract visited URLs and visit times from Chrome and Firefox history databases, with vendor timestamps converted to calendar time."

	cmds := &commands{
		Chrome:     &ChromeCommand{globals: &globals, version: version},
		Firefox:    &FirefoxCommand{globals: &globals, version: version},
		Auto:       &AutoCommand{globals: &globals, version: version},
		Info:       &InfoCommand{globals: &globals, version: version},
		InitConfig: &InitConfigCommand{globals: &globals, version: version},
	}

	parser.AddCommand("chrome", "Extract Chrome visits", "Extract one row per visit from a Chrome History file (urls joined with visits).", cmds.Chrome)
	parser.AddCommand("firefox", "Extract Firefox places", "Extract last visit date, visit count and url of every place in a Firefox places.sqlite file.", cmds.Firefox)
	parser.AddCommand("auto", "Detect the browser and extract", "Detect whether a file is a Chrome or Firefox history database and run the matching extractor.", cmds.Auto)
	parser.AddCommand("info", "Summarize a history file", "Show the detected browser, file size, row count and time range of a history database.", cmds.Info)
	parser.AddCommand("init-config", "Write a default config file", "Write a default config file to --config or the default location, if none exists.", cmds.InitConfig)

	return parser, &globals, cmds
}

// Run is the main entry point for the browserhist CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("browserhist %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				fmt.Println(flagsErr.Message)
				return nil
			}
		}
		return err
	}

	return nil
}
