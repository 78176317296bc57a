package invest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Request is a parsed evaluation request.
type Request struct {
	DiscountRatePercent Percent   // e.g. 8 for 8%
	InitialInvestment   float64   // usually negative
	YearlyCashFlows     []float64 // one per year, year 1 first
}

// CashFlows returns the series [InitialInvestment, YearlyCashFlows...].
func (r Request) CashFlows() CashFlows {
	flows := make(CashFlows, 0, 1+len(r.YearlyCashFlows))
	flows = append(flows, r.InitialInvestment)
	return append(flows, r.YearlyCashFlows...)
}

// Form holds the raw text fields of one session, before parsing.
//
// Flows is keyed by year index: Flows[0] is the year 1 cash flow.
type Form struct {
	Rate       string // discount rate in percent
	Investment string
	Years      string
	Flows      []string
}

// SetYears sets the number of years and rebuilds Flows to exactly n fields.
// Fields of years that remain are kept, new years start empty.
func (f *Form) SetYears(n int) {
	if n < 0 {
		n = 0
	}
	f.Years = strconv.Itoa(n)
	if n <= len(f.Flows) {
		f.Flows = f.Flows[:n]
		return
	}
	f.Flows = append(f.Flows, make([]string, n-len(f.Flows))...)
}

// SetFlow sets the cash flow field of a given year (starting at 1).
func (f *Form) SetFlow(year int, value string) error {
	if year < 1 || year > len(f.Flows) {
		return &InputError{Field: "year", Value: strconv.Itoa(year), Err: fmt.Errorf("must be between 1 and %d", len(f.Flows))}
	}
	f.Flows[year-1] = value
	return nil
}

// Request parses the form. Any field that is missing, not a number, or
// inconsistent with the number of years is reported as an *InputError.
func (f Form) Request() (Request, error) {
	rate, err := parseAmount("discount rate", f.Rate)
	if err != nil {
		return Request{}, err
	}
	investment, err := parseAmount("initial investment", f.Investment)
	if err != nil {
		return Request{}, err
	}
	years, err := ParseYears(f.Years)
	if err != nil {
		return Request{}, err
	}
	if years != len(f.Flows) {
		return Request{}, &InputError{Field: "years", Value: f.Years, Err: fmt.Errorf("got %d cash flow fields", len(f.Flows))}
	}

	req := Request{
		DiscountRatePercent: Percent(rate),
		InitialInvestment:   investment,
		YearlyCashFlows:     make([]float64, years),
	}
	for i, s := range f.Flows {
		if req.YearlyCashFlows[i], err = parseAmount(flowField(i+1), s); err != nil {
			return Request{}, err
		}
	}
	return req, nil
}

// ParseYears parses a number of years: a non negative integer.
func ParseYears(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InputError{Field: "years", Err: errMissing}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InputError{Field: "years", Value: s, Err: errors.New("not an integer")}
	}
	if n < 0 {
		return 0, &InputError{Field: "years", Value: s, Err: errors.New("must not be negative")}
	}
	return n, nil
}

// parseAmount parses a decimal number. NaN and infinities are rejected.
func parseAmount(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InputError{Field: field, Err: errMissing}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &InputError{Field: field, Value: s, Err: errors.New("not a number")}
	}
	return d.InexactFloat64(), nil
}
