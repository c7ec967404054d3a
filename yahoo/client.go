// Package yahoo implements acoesbr.Provider on top of the Yahoo Finance
// quote endpoint.
package yahoo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/acoesbr"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	homeURL  = "https://finance.yahoo.com"
	crumbURL = "https://query1.finance.yahoo.com/v1/test/getcrumb"
	quoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	// followed by the symbol
	summaryURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary/"

	// Yahoo rejects requests that do not look like a browser.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var (
	// ErrCrumb is returned when the session handshake does not yield a crumb.
	ErrCrumb = errors.New("yahoo: no valid crumb")
	// ErrNoQuote is returned by a batch lookup for a symbol Yahoo did not answer for.
	ErrNoQuote = errors.New("yahoo: no quote")
)

// Client queries Yahoo Finance.
//
// A query is a session handshake (cookie and crumb) followed by a single
// batched quote request. The quote endpoint has no company profile, so the
// sector of each quoted symbol is then read from its quote summary.
type Client struct {
	HomeURL    string // page that sets the session cookie
	CrumbURL   string
	QuoteURL   string
	SummaryURL string // prefix, the symbol is appended

	http *http.Client
}

// New returns a Client for the public Yahoo Finance endpoints.
func New() *Client {
	jar, _ := cookiejar.New(nil) // never fails with nil options
	return &Client{
		HomeURL:    homeURL,
		CrumbURL:   crumbURL,
		QuoteURL:   quoteURL,
		SummaryURL: summaryURL,
		http: &http.Client{
			Jar:       jar,
			Transport: &logTransport{http.DefaultTransport},
		},
	}
}

var _ acoesbr.Provider = (*Client)(nil)

// Quotes fetches the quote records of all symbols in one request.
func (c *Client) Quotes(ctx context.Context, symbols []string) (acoesbr.Batch, error) {
	crumb, err := c.crumb(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	q.Set("crumb", crumb)
	body, err := c.get(ctx, c.QuoteURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	b, err := parseQuotes(body)
	if err != nil {
		return nil, err
	}

	for symbol, info := range b {
		if info.Text("sector") != "" {
			continue
		}
		sector, err := c.sector(ctx, crumb, symbol)
		if err != nil {
			// the quote is still usable without its sector.
			log.Warn().Err(err).Str("symbol", symbol).Msg("no sector")
			continue
		}
		info["sector"] = sector
	}
	return b, nil
}

// sector returns the sector of symbol from its asset profile, or "" if the
// profile has none.
func (c *Client) sector(ctx context.Context, crumb, symbol string) (string, error) {
	q := url.Values{}
	q.Set("modules", "assetProfile")
	q.Set("crumb", crumb)
	body, err := c.get(ctx, c.SummaryURL+url.PathEscape(symbol)+"?"+q.Encode())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(gjson.GetBytes(body, "quoteSummary.result.0.assetProfile.sector").String()), nil
}

// crumb opens a session and returns its crumb.
func (c *Client) crumb(ctx context.Context) (string, error) {
	// the home page only matters for the cookies it sets, its status is irrelevant.
	if _, _, err := c.do(ctx, c.HomeURL); err != nil {
		return "", fmt.Errorf("cannot open yahoo session: %w", err)
	}

	body, err := c.get(ctx, c.CrumbURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCrumb, err)
	}
	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(crumb, "<") {
		return "", fmt.Errorf("%w: got %q", ErrCrumb, truncate(crumb, 40))
	}
	return crumb, nil
}

// get performs a GET request and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, addr string) ([]byte, error) {
	resp, body, err := c.do(ctx, addr)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v%v: %v: %s", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status, describe(body))
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, addr string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, body, nil
}

// describe extracts the error description of a Yahoo error payload.
func describe(body []byte) string {
	for _, path := range []string{"quoteResponse.error.description", "quoteSummary.error.description", "finance.error.description"} {
		if d := gjson.GetBytes(body, path); d.Exists() && d.String() != "" {
			return d.String()
		}
	}
	return truncate(strings.TrimSpace(string(body)), 80)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// batch is the decoded quote response, by symbol.
type batch map[string]acoesbr.Info

func (b batch) Info(symbol string) (acoesbr.Info, error) {
	info, ok := b[symbol]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoQuote, symbol)
	}
	return info, nil
}

// parseQuotes decodes a quote response. Numbers are kept as json.Number so
// no precision is lost before they become decimals.
func parseQuotes(body []byte) (batch, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("cannot decode quote response: %w", err)
	}

	res, err := jsonpath.Get("$.quoteResponse.result", v)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote response: %w", err)
	}
	list, ok := res.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected quote response: no result list: %s", describe(body))
	}

	b := make(batch, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		symbol, _ := m["symbol"].(string)
		if symbol == "" {
			continue
		}
		b[symbol] = normalize(acoesbr.Info(m))
	}
	return b, nil
}
