package acoesbr

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// MarketSuffix is appended to a B3 ticker to get the provider symbol.
const MarketSuffix = ".SA"

// ProviderSymbol returns the provider symbol for a B3 ticker (PETR4 -> PETR4.SA).
func ProviderSymbol(ticker string) string { return ticker + MarketSuffix }

// Provider is a market data source able to answer for many symbols in one query.
type Provider interface {
	Quotes(ctx context.Context, symbols []string) (Batch, error)
}

// Batch is the response of a single Provider query.
type Batch interface {
	// Info returns the record for a provider symbol.
	Info(symbol string) (Info, error)
}

// Fetch queries p once for all tickers and returns a record per ticker.
//
// A ticker whose lookup fails gets an empty Info, it never aborts the batch.
// Only a failure of the query itself is returned.
func Fetch(ctx context.Context, p Provider, tickers []string) (map[string]Info, error) {
	symbols := make([]string, len(tickers))
	for i, t := range tickers {
		symbols[i] = ProviderSymbol(t)
	}

	batch, err := p.Quotes(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch quotes for %d symbols: %w", len(symbols), err)
	}

	infos := make(map[string]Info, len(tickers))
	for i, t := range tickers {
		info, err := batch.Info(symbols[i])
		if err != nil {
			log.Warn().Err(err).Str("ticker", t).Msg("no data for ticker")
			info = nil
		}
		if info == nil {
			info = Info{}
		}
		infos[t] = info
	}
	return infos, nil
}
