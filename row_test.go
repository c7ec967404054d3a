package acoesbr

import (
	"testing"

	"github.com/etnz/acoesbr/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create a valid nullable decimal from a const.
func D(v float64) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.NewFromFloat(v)) }

// null is the null marker.
var null = decimal.NullDecimal{}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		pe, dy, pb decimal.NullDecimal
		want       Label
	}{
		{"all thresholds met", D(10), D(7), D(1.2), Opportunity},
		{"boundaries are inclusive", D(12), D(6), D(1.5), Opportunity},
		{"pe too high", D(15), D(7), D(1.2), Neutral},
		{"yield too low", D(10), D(5.99), D(1.2), Neutral},
		{"pb too high", D(10), D(7), D(1.51), Neutral},
		{"pe missing", null, D(7), D(1.2), NoData},
		{"yield missing", D(10), null, D(1.2), NoData},
		{"pb missing", D(10), D(7), null, NoData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.pe, tc.dy, tc.pb); got != tc.want {
				t.Errorf("Classify(%v, %v, %v) = %q, want %q", tc.pe, tc.dy, tc.pb, got, tc.want)
			}
		})
	}
}

func TestDayChange(t *testing.T) {
	testCases := []struct {
		name        string
		price, prev decimal.NullDecimal
		want        decimal.NullDecimal
	}{
		{"up 10%", D(110), D(100), D(10)},
		{"down 5%", D(95), D(100), D(-5)},
		{"previous close is zero", D(110), D(0), null},
		{"previous close missing", D(110), null, null},
		{"price missing", null, D(100), null},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DayChange(tc.price, tc.prev)
			if got.Valid != tc.want.Valid || !got.Decimal.Equal(tc.want.Decimal) {
				t.Errorf("DayChange(%v, %v) = %v, want %v", tc.price, tc.prev, got, tc.want)
			}
		})
	}
}

func TestNewRow(t *testing.T) {
	on := date.New(2025, 3, 7)
	info := Info{
		"longName":                   nil,
		"shortName":                  "BANCO DO BRASIL ON",
		"regularMarketPrice":         27.5,
		"previousClose":              25.0,
		"marketCap":                  int64(157000000000),
		"trailingPE":                 nil,
		"forwardPE":                  4.1,
		"priceToBook":                0.9,
		"dividendYield":              0.095,
		"fiftyTwoWeekHigh":           29.9,
		"fiftyTwoWeekLow":            23.1,
		"averageVolume":              21000000,
		"sector":                     "Financial Services",
		"regularMarketPreviousClose": 1.0, // not an alias of previousClose here
	}

	r := NewRow("BBAS3", info, on)

	if r.On != on || r.Ticker != "BBAS3" {
		t.Errorf("NewRow() On, Ticker = %v, %v, want %v, BBAS3", r.On, r.Ticker, on)
	}
	if r.Name != "BANCO DO BRASIL ON" {
		t.Errorf("NewRow() Name = %q, want the short name", r.Name)
	}
	checks := []struct {
		field string
		got   decimal.NullDecimal
		want  decimal.NullDecimal
	}{
		{"Price", r.Price, D(27.5)},
		{"ChangePct", r.ChangePct, D(10)},
		{"MarketCap", r.MarketCap, D(157000000000)},
		{"PE", r.PE, D(4.1)},
		{"YieldPct", r.YieldPct, D(9.5)},
		{"PB", r.PB, D(0.9)},
		{"High52", r.High52, D(29.9)},
		{"Low52", r.Low52, D(23.1)},
		{"Volume", r.Volume, D(21000000)},
	}
	for _, c := range checks {
		if c.got.Valid != c.want.Valid || !c.got.Decimal.Equal(c.want.Decimal) {
			t.Errorf("NewRow() %s = %v, want %v", c.field, c.got, c.want)
		}
	}
	if r.Sector != "Financial Services" {
		t.Errorf("NewRow() Sector = %q, want %q", r.Sector, "Financial Services")
	}
	if r.Opportunity != Opportunity {
		t.Errorf("NewRow() Opportunity = %q, want %q", r.Opportunity, Opportunity)
	}
}

func TestNewRow_Empty(t *testing.T) {
	r := NewRow("VALE3", Info{}, date.New(2025, 3, 7))

	if r.Name != "VALE3" {
		t.Errorf("NewRow() Name = %q, want the ticker", r.Name)
	}
	if r.Sector != "-" {
		t.Errorf("NewRow() Sector = %q, want %q", r.Sector, "-")
	}
	for name, v := range map[string]decimal.NullDecimal{
		"Price": r.Price, "ChangePct": r.ChangePct, "PE": r.PE, "YieldPct": r.YieldPct, "PB": r.PB,
		"MarketCap": r.MarketCap, "Volume": r.Volume,
	} {
		if v.Valid {
			t.Errorf("NewRow() %s = %v, want null", name, v.Decimal)
		}
	}
	if r.Opportunity != NoData {
		t.Errorf("NewRow() Opportunity = %q, want %q", r.Opportunity, NoData)
	}
}

func TestNewRow_InvalidNumbers(t *testing.T) {
	info := Info{
		"currentPrice":  "n/a",
		"previousClose": 10.0,
		"dividendYield": "high",
		"trailingPE":    8.0,
		"priceToBook":   1.0,
	}
	r := NewRow("CMIG4", info, date.New(2025, 3, 7))

	if r.Price.Valid || r.ChangePct.Valid || r.YieldPct.Valid {
		t.Errorf("NewRow() Price, ChangePct, YieldPct = %v, %v, %v, want nulls", r.Price, r.ChangePct, r.YieldPct)
	}
	if r.Opportunity != NoData {
		t.Errorf("NewRow() Opportunity = %q, want %q", r.Opportunity, NoData)
	}
}

func TestBuildTable(t *testing.T) {
	tickers := []string{"PETR4", "VALE3", "ITUB4"}
	infos := map[string]Info{
		"ITUB4": {"regularMarketPrice": 33.0},
		"PETR4": {"regularMarketPrice": 38.0},
	}

	table := BuildTable(tickers, infos, date.New(2025, 3, 7))

	if len(table) != len(tickers) {
		t.Fatalf("BuildTable() returned %d rows, want %d", len(table), len(tickers))
	}
	for i, tk := range tickers {
		if table[i].Ticker != tk {
			t.Errorf("BuildTable()[%d].Ticker = %q, want %q", i, table[i].Ticker, tk)
		}
	}
	if table[1].Price.Valid {
		t.Errorf("BuildTable() VALE3 price = %v, want null", table[1].Price.Decimal)
	}
}
