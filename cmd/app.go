// Package cmd implements the CLI application that prints and exports the
// stock snapshot.
package cmd

import (
	"io"
	"os"

	"github.com/etnz/acoesbr"
	"github.com/etnz/acoesbr/yahoo"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel selects the log level (debug, info, warn, error). Default is warn.
const EnvLogLevel = "TOP10_LOG_LEVEL"

// DefaultCommand is executed when no subcommand is given.
const DefaultCommand = "run"

// Commands are the application subcommands.
var Commands = []subcommands.Command{
	&runCmd{},
	&tickersCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout receives the report, replaced in tests.
var stdout io.Writer = os.Stdout

// newProvider returns the market data provider, replaced in tests.
var newProvider = func() acoesbr.Provider { return yahoo.New() }

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// SetupLogging configures the global logger: human readable on stderr, at
// the level set by EnvLogLevel.
func SetupLogging() {
	level := zerolog.WarnLevel
	if s := os.Getenv(EnvLogLevel); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// Complete handles shell completion of the subcommand names. It does nothing
// unless called by the shell.
func Complete(name string) {
	sub := map[string]*complete.Command{"help": {}, "commands": {}}
	for _, c := range Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete(name)
}
