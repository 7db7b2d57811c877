package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Check  *CheckCommand
	Import *ImportCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "idcheck"
	parser.LongDescription = "Check numeric content identifiers against a local reference catalogue."

	cmds := &commands{
		Check:  &CheckCommand{globals: &globals, version: version},
		Import: &ImportCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("check", "Check identifiers against the catalogue", "Check one or many identifiers against the reference catalogue and print found/not-found rows with running session statistics.", cmds.Check)
	parser.AddCommand("import", "Import a reference dataset snapshot", "Import a JSON reference dataset snapshot into the local cache, replacing any previous snapshot.", cmds.Import)
	parser.AddCommand("status", "Show cached snapshot information", "Show information about the cached reference snapshot and the local database.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the idcheck CLI using os.Args.
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
			fmt.Printf("idcheck %s\n", version)
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
