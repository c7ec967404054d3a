package acoesbr

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Numbers are displayed in the Brazilian convention: period as thousands
// separator and comma as decimal separator, whatever the runtime locale.

// brl returns the currency used to display prices.
func brl() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, money.BRL).Currency()
}

var (
	moneyFormat   = newMoneyFormatter(brl())
	percentFormat = money.NewFormatter(2, ",", "", "", "1%")
	ratioFormat   = money.NewFormatter(2, ",", "", "", "1")
	integerFormat = money.NewFormatter(0, ",", ".", "", "1")
)

// newMoneyFormatter is the currency formatter with a space between the
// symbol and the amount ("R$ 1.234,50").
func newMoneyFormatter(cur money.Currency) *money.Formatter {
	return money.NewFormatter(cur.Fraction, cur.Decimal, cur.Thousand, cur.Grapheme, "$ 1")
}

// format rounds v to f.Fraction digits and formats it, null is "-".
func format(f *money.Formatter, v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	dec := v.Decimal.Round(int32(f.Fraction)).Shift(int32(f.Fraction))
	return f.Format(dec.IntPart())
}

// FormatMoney formats a price in reais, e.g. "R$ 1.234,50".
func FormatMoney(v decimal.NullDecimal) string { return format(moneyFormat, v) }

// FormatPercent formats a percentage with two decimals, e.g. "6,51%".
func FormatPercent(v decimal.NullDecimal) string { return format(percentFormat, v) }

// FormatRatio formats a ratio with two decimals, e.g. "8,35".
func FormatRatio(v decimal.NullDecimal) string { return format(ratioFormat, v) }

// FormatInteger formats the integer part of v with thousands separators,
// e.g. "1.234.567".
func FormatInteger(v decimal.NullDecimal) string {
	if !v.Valid {
		return "-"
	}
	return integerFormat.Format(v.Decimal.IntPart())
}
