package acoesbr

import "strings"

// BaseTickers is the base list of B3 tickers in the snapshot.
var BaseTickers = []string{
	"PETR4", "VALE3", "ITUB4", "BBDC4", "BBAS3",
	"ABEV3", "WEGE3", "B3SA3", "RENT3", "ITSA4",
}

// ExtraTickers are appended after BaseTickers.
var ExtraTickers = []string{"BBSE3", "ODPV3", "KLBN4", "TAEE11", "SAPR4", "CMIG4"}

// Tickers returns the canonical ticker list: BaseTickers then ExtraTickers,
// without duplicates.
func Tickers() []string { return Unique(BaseTickers, ExtraTickers) }

// Unique concatenates lists in order, trims and uppercases every entry, and
// drops empty entries and repeats. The first occurrence wins.
func Unique(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, t := range list {
			t = strings.ToUpper(strings.TrimSpace(t))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
