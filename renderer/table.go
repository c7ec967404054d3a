// Package renderer renders snapshots for the terminal.
package renderer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/etnz/acoesbr"
)

// Columns are the columns of the terminal view, a subset of the Row fields.
var Columns = []string{"Ticker", "Price", "Change", "P/E", "DY", "P/B", "Market Cap", "Opportunity"}

// Table writes t as an aligned plain text table, values in the Brazilian
// number format and null values as "-".
func Table(w io.Writer, t acoesbr.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, c := range Columns {
		fmt.Fprint(tw, c, "\t")
	}
	fmt.Fprintln(tw)

	for _, r := range t {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Ticker,
			acoesbr.FormatMoney(r.Price),
			acoesbr.FormatPercent(r.ChangePct),
			acoesbr.FormatRatio(r.PE),
			acoesbr.FormatPercent(r.YieldPct),
			acoesbr.FormatRatio(r.PB),
			acoesbr.FormatInteger(r.MarketCap),
			r.Opportunity,
		)
	}
	return tw.Flush()
}
