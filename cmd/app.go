// Package cmd implements the CLI application to track a household's
// finances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wealthwise/wealthwise"
)

// Commands lists every subcommand for the main package to register.
var Commands = []subcommands.Command{
	&onboardCmd{},
	&connectCmd{},
	&accountCmd{},
	&summaryCmd{},
	&expenseCmd{},
	&incomeCmd{},
	&transferCmd{},
	&txCmd{},
	&investCmd{},
	&contributeCmd{},
	&redeemCmd{},
	&budgetCmd{},
	&billsCmd{},
	&goalCmd{},
	&adviseCmd{},
	&importCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var snapshotFile = flag.String("snapshot-file", "wealthwise.json", "Path to the snapshot file holding the full tracker state")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Logger returns the application logger, writing human-readable lines to
// stderr so command output on stdout stays clean.
func Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// LoadEnv loads the optional .env file so GEMINI_API_KEY can live next to
// the snapshot instead of the shell profile. A missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log := Logger()
		log.Warn().Err(err).Msg("cannot load .env file")
	}
}

// LoadTracker reads the tracker from the app snapshot file. A missing file
// yields a fresh tracker in the onboarding state.
func LoadTracker() (*wealthwise.Tracker, error) {
	return wealthwise.LoadSnapshot(*snapshotFile)
}

// SaveTracker writes the tracker back to the app snapshot file.
func SaveTracker(tr *wealthwise.Tracker) error {
	return wealthwise.SaveSnapshot(*snapshotFile, tr)
}

// requireActive loads the tracker and fails when onboarding has not been
// completed yet, pointing the user at the onboard command.
func requireActive() (*wealthwise.Tracker, error) {
	tr, err := LoadTracker()
	if err != nil {
		return nil, err
	}
	if tr.State() == wealthwise.StateOnboarding {
		return nil, fmt.Errorf("no profile yet, run 'ww onboard' first")
	}
	return tr, nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
