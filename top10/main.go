// Command top10 prints a snapshot of Brazilian stocks and saves it to a
// spreadsheet on the desktop.
//
// Without arguments it runs the whole snapshot (see "top10 help run").
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/acoesbr/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)
	cmd.SetupLogging()

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse([]string{cmd.DefaultCommand})
	}
	os.Exit(int(commander.Execute(context.Background())))
}
