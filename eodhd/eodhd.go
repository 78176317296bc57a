// Package eodhd looks up daily closing prices from the EOD Historical Data
// API (https://eodhd.com).
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/etnz/invest"
	"github.com/etnz/invest/date"
	"github.com/etnz/invest/httpcache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public EODHD endpoint.
const DefaultBaseURL = "https://eodhd.com"

// APIKeyEnv is the environment variable holding the API key.
const APIKeyEnv = "EODHD_API_KEY"

// Client queries the end of day API.
//
// EODHD tickers are "SYMBOL.EXCHANGE", e.g. "MCD.US" or "NVD.F". A ticker
// without exchange is sent as is, the API then assumes US.
type Client struct {
	APIKey   string
	BaseURL  string
	Currency string // currency of the returned quotes, EODHD does not tell
	HTTP     *http.Client
	Log      *zap.Logger
	Today    func() date.Date
}

// New returns a Client on DefaultBaseURL quoting in USD.
func New(apiKey string, client *http.Client, log *zap.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{APIKey: apiKey, BaseURL: DefaultBaseURL, Currency: "USD", HTTP: client, Log: log, Today: date.Today}
}

var _ invest.Provider = (*Client)(nil)

// Bar is one day of the end of day series.
type Bar struct {
	Date  date.Date       `json:"date"`
	Open  decimal.Decimal `json:"open"`
	Close decimal.Decimal `json:"close"`
}

// LatestClose returns the last daily close of ticker within the last year.
func (c *Client) LatestClose(ctx context.Context, ticker string) (invest.Quote, error) {
	ticker, err := invest.NormalizeTicker(ticker)
	if err != nil {
		return invest.Quote{}, err
	}
	to := c.Today()
	bars, err := c.Bars(ctx, ticker, to.AddYears(-1), to)
	if err != nil {
		return invest.Quote{}, err
	}
	if len(bars) == 0 {
		return invest.Quote{}, &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New("no data found for this ticker")}
	}
	last := bars[len(bars)-1]
	cur := c.Currency
	if cur == "" {
		cur = "USD"
	}
	return invest.Quote{Ticker: ticker, Date: last.Date, Close: invest.M(last.Close, cur)}, nil
}

// Bars returns the daily bars of ticker between from and to (included), in
// chronological order.
func (c *Client) Bars(ctx context.Context, ticker string, from, to date.Date) ([]Bar, error) {
	// https://eodhd.com/api/eod/NVD.F?api_token=demo&fmt=json
	// [
	//
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },
	if c.APIKey == "" {
		return nil, &invest.InputError{Field: "eodhd api key", Err: fmt.Errorf("missing: use -eodhd-api-key or %s", APIKeyEnv)}
	}
	addr := fmt.Sprintf("%s/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", c.BaseURL, url.PathEscape(ticker), url.QueryEscape(c.APIKey), from, to)

	content := make([]Bar, 0)
	if err := httpcache.GetJSON(ctx, c.HTTP, addr, &content); err != nil {
		var se *httpcache.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New("no data found for this ticker")}
		}
		return nil, &invest.LookupError{Ticker: ticker, Kind: invest.Network, Err: err}
	}
	sort.SliceStable(content, func(i, j int) bool { return content[i].Date.Before(content[j].Date) })
	c.Log.Debug("eod bars", zap.String("ticker", ticker), zap.Int("count", len(content)))
	return content, nil
}
