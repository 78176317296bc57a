// Package yahoo looks up daily closing prices from the Yahoo Finance chart
// API.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/invest"
	"github.com/etnz/invest/date"
	"github.com/etnz/invest/httpcache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Yahoo Finance endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// DefaultRange is the history window queried for the latest close.
const DefaultRange = "1y"

// Client queries the chart API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

// New returns a Client on DefaultBaseURL.
func New(client *http.Client, log *zap.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{BaseURL: DefaultBaseURL, HTTP: client, Log: log}
}

var _ invest.Provider = (*Client)(nil)

// LatestClose returns the last available daily close of ticker within the
// last year.
func (c *Client) LatestClose(ctx context.Context, ticker string) (invest.Quote, error) {
	ticker, err := invest.NormalizeTicker(ticker)
	if err != nil {
		return invest.Quote{}, err
	}
	closes, currency, err := c.History(ctx, ticker, DefaultRange)
	if err != nil {
		return invest.Quote{}, err
	}
	if closes.Len() == 0 {
		return invest.Quote{}, &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New("no data found for this ticker")}
	}
	day, price := closes.Latest()
	c.Log.Debug("latest close", zap.String("ticker", ticker), zap.Stringer("date", day), zap.Float64("close", price), zap.String("currency", currency))
	return invest.Quote{Ticker: ticker, Date: day, Close: majorUnit(price, currency)}, nil
}

// minorUnits maps the sub-unit currency codes used by some exchanges (London
// quotes in pence, Tel Aviv in agorot) to their currency and exponent.
var minorUnits = map[string]struct {
	currency string
	exp      int32
}{
	"GBp": {"GBP", 2},
	"GBX": {"GBP", 2},
	"ILA": {"ILS", 2},
	"ZAc": {"ZAR", 2},
	"ZAC": {"ZAR", 2},
}

// majorUnit returns price as money in the major unit of its currency.
func majorUnit(price float64, currency string) invest.Money {
	if u, ok := minorUnits[currency]; ok {
		return invest.M(decimal.NewFromFloat(price).Shift(-u.exp), u.currency)
	}
	return invest.M(price, currency)
}

// History returns the daily closes of ticker over rng (e.g. "5d", "1y") and
// their currency.
//
// Days without a close (null in the payload) are skipped. Errors are
// *invest.LookupError.
func (c *Client) History(ctx context.Context, ticker, rng string) (*date.History[float64], string, error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/AAPL?range=1y&interval=1d
	// {
	//   "chart": {
	//     "result": [{
	//       "meta": {"currency": "USD", "symbol": "AAPL", "exchangeTimezoneName": "America/New_York", ...},
	//       "timestamp": [1719840600, ...],
	//       "indicators": {"quote": [{"close": [216.75, ...], "open": [...], ...}]}
	//     }],
	//     "error": null
	//   }
	// }
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", c.BaseURL, url.PathEscape(ticker), url.QueryEscape(rng))

	var jobj any
	if err := httpcache.GetJSON(ctx, c.HTTP, addr, &jobj); err != nil {
		return nil, "", lookupError(ticker, err)
	}

	if desc, ok := chartError(jobj); ok {
		return nil, "", &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New(desc)}
	}

	currency := "USD"
	if v, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		if s, ok := v.(string); ok && s != "" {
			currency = s
		}
	}
	loc := time.UTC
	if v, err := jsonpath.Get("$.chart.result[0].meta.exchangeTimezoneName", jobj); err == nil {
		if s, ok := v.(string); ok {
			if l, err := time.LoadLocation(s); err == nil {
				loc = l
			}
		}
	}

	h := new(date.History[float64])
	timestamps, err := list("$.chart.result[0].timestamp", jobj)
	if err != nil {
		// a valid ticker without any trading in the range has no timestamp
		return h, currency, nil
	}
	closes, err := list("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, "", &invest.LookupError{Ticker: ticker, Kind: invest.Network, Err: fmt.Errorf("unexpected chart payload: %w", err)}
	}
	if len(closes) != len(timestamps) {
		return nil, "", &invest.LookupError{Ticker: ticker, Kind: invest.Network, Err: fmt.Errorf("unexpected chart payload: %d timestamps for %d closes", len(timestamps), len(closes))}
	}
	for i, jts := range timestamps {
		ts, ok := jts.(float64)
		if !ok {
			continue
		}
		price, ok := closes[i].(float64)
		if !ok {
			// null close, e.g. a trading halt
			continue
		}
		h.Append(date.Of(time.Unix(int64(ts), 0).In(loc)), price)
	}
	return h, currency, nil
}

// chartError returns the description of a non null "$.chart.error".
func chartError(jobj any) (string, bool) {
	v, err := jsonpath.Get("$.chart.error", jobj)
	if err != nil || v == nil {
		return "", false
	}
	desc, err := jsonpath.Get("$.chart.error.description", jobj)
	if s, ok := desc.(string); err == nil && ok && s != "" {
		return s, true
	}
	return fmt.Sprint(v), true
}

// list evaluates path in jobj and expects a JSON array.
func list(path string, jobj any) ([]any, error) {
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list: %T", path, v)
	}
	return l, nil
}

// lookupError classifies a failed GET.
func lookupError(ticker string, err error) error {
	var se *httpcache.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		// the 404 body still holds a chart error with a description
		var jobj any
		if json.Unmarshal(se.Body, &jobj) == nil {
			if desc, ok := chartError(jobj); ok {
				return &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New(desc)}
			}
		}
		return &invest.LookupError{Ticker: ticker, Kind: invest.NotFound, Err: errors.New("no data found for this ticker")}
	}
	return &invest.LookupError{Ticker: ticker, Kind: invest.Network, Err: err}
}
