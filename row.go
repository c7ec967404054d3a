package acoesbr

import (
	"github.com/etnz/acoesbr/date"
	"github.com/shopspring/decimal"
)

// Label is the result of the demo heuristic computed by Classify.
//
// It is not an investment recommendation.
type Label string

const (
	NoData      Label = "no data"
	Opportunity Label = "opportunity (heuristic)"
	Neutral     Label = "neutral"
)

// heuristic thresholds, arbitrary demo values.
var (
	maxPE       = decimal.NewFromInt(12)
	minYieldPct = decimal.NewFromInt(6)
	maxPB       = decimal.RequireFromString("1.5")
)

// Classify labels a stock from its P/E, dividend yield (in percent) and
// price/book.
//
// It returns NoData if any of them is null, Opportunity if
// pe <= 12 and yield >= 6% and pb <= 1.5, and Neutral otherwise.
func Classify(pe, dyPct, pb decimal.NullDecimal) Label {
	if !pe.Valid || !dyPct.Valid || !pb.Valid {
		return NoData
	}
	if pe.Decimal.LessThanOrEqual(maxPE) &&
		dyPct.Decimal.GreaterThanOrEqual(minYieldPct) &&
		pb.Decimal.LessThanOrEqual(maxPB) {
		return Opportunity
	}
	return Neutral
}

var hundred = decimal.NewFromInt(100)

// DayChange returns (price/previousClose - 1) * 100.
//
// It is null if either value is null or if previousClose is zero.
func DayChange(price, previousClose decimal.NullDecimal) decimal.NullDecimal {
	if !price.Valid || !previousClose.Valid || previousClose.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	change := price.Decimal.Div(previousClose.Decimal).Sub(decimal.NewFromInt(1)).Mul(hundred)
	return decimal.NewNullDecimal(change)
}

// Row is the snapshot of one ticker.
//
// Numeric fields are null (Valid is false) when the provider did not
// report them.
type Row struct {
	On          date.Date // collection date
	Ticker      string
	Name        string
	Price       decimal.NullDecimal
	ChangePct   decimal.NullDecimal
	MarketCap   decimal.NullDecimal
	PE          decimal.NullDecimal
	YieldPct    decimal.NullDecimal // dividend yield in percent
	PB          decimal.NullDecimal
	High52      decimal.NullDecimal
	Low52       decimal.NullDecimal
	Volume      decimal.NullDecimal
	Sector      string
	Opportunity Label
}

// Table is the ordered list of rows, one per ticker.
type Table []Row

// NewRow computes the row of ticker from its provider record.
func NewRow(ticker string, info Info, on date.Date) Row {
	r := Row{
		On:        on,
		Ticker:    ticker,
		Name:      info.Text("longName", "shortName"),
		Price:     info.Number("currentPrice", "regularMarketPrice"),
		MarketCap: info.Number("marketCap"),
		PE:        info.Number("trailingPE", "forwardPE"),
		PB:        info.Number("priceToBook"),
		High52:    info.Number("fiftyTwoWeekHigh"),
		Low52:     info.Number("fiftyTwoWeekLow"),
		Volume:    info.Number("volume", "averageVolume"),
		Sector:    info.Text("sector"),
	}
	if r.Name == "" {
		r.Name = ticker
	}
	if r.Sector == "" {
		r.Sector = "-"
	}
	r.ChangePct = DayChange(r.Price, info.Number("previousClose"))

	if dy := info.Number("dividendYield"); dy.Valid {
		r.YieldPct = decimal.NewNullDecimal(dy.Decimal.Mul(hundred))
	}
	r.Opportunity = Classify(r.PE, r.YieldPct, r.PB)
	return r
}

// BuildTable returns one row per ticker, in order. A ticker missing from
// infos gets a row of null values.
func BuildTable(tickers []string, infos map[string]Info, on date.Date) Table {
	table := make(Table, 0, len(tickers))
	for _, t := range tickers {
		table = append(table, NewRow(t, infos[t], on))
	}
	return table
}
