package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/acoesbr"
	"github.com/google/subcommands"
)

type tickersCmd struct{}

func (*tickersCmd) Name() string     { return "tickers" }
func (*tickersCmd) Synopsis() string { return "lists the tickers of the snapshot" }
func (*tickersCmd) Usage() string {
	return `tickers

Prints the ticker list used by run, one per line, in order.
`
}

func (c *tickersCmd) SetFlags(f *flag.FlagSet) {}

func (c *tickersCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, t := range acoesbr.Tickers() {
		fmt.Fprintln(stdout, t)
	}
	return subcommands.ExitSuccess
}
