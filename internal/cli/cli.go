package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Extract *ExtractCommand
	Paths   *PathsCommand
	Convert *ConvertCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "browsekit"
	parser.LongDescription = "Extract history, cookies, and bookmarks from Chromium-family browser profiles into spreadsheet-ready CSV reports."

	cmds := &commands{
		Extract: &ExtractCommand{globals: &globals, version: version},
		Paths:   &PathsCommand{globals: &globals, version: version},
		Convert: &ConvertCommand{globals: &globals, version: version},
	}

	parser.AddCommand("extract", "Extract all browser artifacts to CSV", "Extract history, cookies, and bookmarks from every configured browser and write per-browser and combined CSV reports.", cmds.Extract)
	parser.AddCommand("paths", "Show resolved artifact store paths", "Show the resolved store path of every (browser, artifact) pair and whether it exists.", cmds.Paths)
	parser.AddCommand("convert", "Convert raw Chromium timestamps", "Convert one or more raw Chromium-epoch microsecond values to calendar time.", cmds.Convert)

	return parser, &globals, cmds
}

// Run is the main entry point for the browsekit CLI using os.Args.
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
			fmt.Printf("browsekit %s\n", version)
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
				return nil
			}
		}
		return err
	}

	return nil
}
