package invest

import (
	"context"
	"errors"
	"strings"

	"github.com/etnz/invest/date"
)

// Quote is the closing price of a security on a given day.
type Quote struct {
	Ticker string
	Date   date.Date
	Close  Money
}

// Provider looks up market quotes from a remote source.
//
// LatestClose fails with a *LookupError: NotFound for an unknown ticker or an
// empty history, Network for any transport failure.
type Provider interface {
	LatestClose(ctx context.Context, ticker string) (Quote, error)
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", &InputError{Field: "ticker", Err: errors.New("please enter a stock ticker symbol")}
	}
	return ticker, nil
}
