package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/acoesbr"
	"github.com/etnz/acoesbr/date"
	"github.com/etnz/acoesbr/renderer"
	"github.com/etnz/acoesbr/spreadsheet"
	"github.com/google/subcommands"
)

// Disclaimer is printed after every report.
const Disclaimer = "Note: 'Opportunity' is a demo heuristic, not a recommendation."

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "prints the snapshot and saves it to the desktop" }
func (*runCmd) Usage() string {
	return `run

Fetches quotes and fundamentals of the ticker list from Yahoo Finance,
prints the snapshot table, and saves it to top10_acoes_br.xlsx on the
Desktop (or in the home folder if there is no Desktop), replacing the
previous file.

This is the default command.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Run(ctx, stdout, newProvider(), spreadsheet.OutputPath); err != nil {
		fmt.Fprintf(stdout, "\nERROR: %v\n\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Run fetches the snapshot from p, prints it to w, and saves it to the path
// returned by output.
//
// Nothing is saved if any step fails.
func Run(ctx context.Context, w io.Writer, p acoesbr.Provider, output func() (string, error)) error {
	tickers := acoesbr.Tickers()
	fmt.Fprintln(w, "Tickers:", strings.Join(tickers, ", "))

	infos, err := acoesbr.Fetch(ctx, p, tickers)
	if err != nil {
		return err
	}
	table := acoesbr.BuildTable(tickers, infos, date.Today())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w, "STOCKS BR (Yahoo Finance)")
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w)
	if err := renderer.Table(w, table); err != nil {
		return err
	}

	path, err := output()
	if err != nil {
		return err
	}
	if err := spreadsheet.Save(path, table); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nSpreadsheet updated at:\n%s\n\n", path)
	fmt.Fprintln(w, Disclaimer)
	return nil
}
