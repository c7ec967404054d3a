package yahoo

import (
	"github.com/etnz/acoesbr"
	"github.com/shopspring/decimal"
)

// aliases fill the record fields read by acoesbr.NewRow from their quote
// endpoint equivalent, unless already set.
var aliases = []struct{ name, from string }{
	{"previousClose", "regularMarketPreviousClose"},
	{"volume", "regularMarketVolume"},
	{"averageVolume", "averageDailyVolume3Month"},
}

// normalize completes info in place and returns it.
//
// dividendYield is always a fraction afterwards: the quote endpoint reports
// dividendYield in percent, and trailingAnnualDividendYield, as a fraction,
// only stands in when dividendYield is missing. Yahoo often reports a zero
// trailing yield for B3 symbols that do pay dividends.
func normalize(info acoesbr.Info) acoesbr.Info {
	for _, a := range aliases {
		if _, ok := acoesbr.Coalesce(info, a.name); ok {
			continue
		}
		if v, ok := acoesbr.Coalesce(info, a.from); ok {
			info[a.name] = v
		}
	}

	if y := info.Number("dividendYield"); y.Valid {
		info["dividendYield"] = y.Decimal.Div(decimal.NewFromInt(100))
	} else if y := info.Number("trailingAnnualDividendYield"); y.Valid {
		info["dividendYield"] = y.Decimal
	}
	return info
}
