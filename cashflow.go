package invest

import (
	"errors"
	"fmt"
	"math"
)

// CashFlows is a series of signed amounts, one per period.
//
// Index 0 is the initial outlay, usually negative, and index t is the amount
// received (or paid) at the end of period t.
type CashFlows []float64

// NPV returns the Net Present Value of flows discounted at rate:
//
//	NPV = Σ flows[t] / (1+rate)^t
//
// rate is a fraction per period (0.08 for 8%). The result is ±Inf or NaN when
// rate is -1 or when a flow is not finite, callers should use
// CashFlows.Validate beforehand.
func NPV(flows CashFlows, rate float64) float64 {
	var npv float64
	for t, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// Validate returns an *InputError if flows cannot be evaluated at rate.
func (flows CashFlows) Validate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return &InputError{Field: "discount rate", Value: fmt.Sprint(rate), Err: errNotFinite}
	}
	if rate <= -1 {
		return &InputError{Field: "discount rate", Value: PercentOf(rate).String(), Err: errors.New("must be greater than -100%")}
	}
	if len(flows) == 0 {
		return &InputError{Field: "cash flows", Err: errors.New("at least the initial investment is required")}
	}
	for t, cf := range flows {
		if math.IsNaN(cf) || math.IsInf(cf, 0) {
			return &InputError{Field: flowField(t), Value: fmt.Sprint(cf), Err: errNotFinite}
		}
	}
	return nil
}

// flowField names the input field holding the t-th cash flow.
func flowField(t int) string {
	if t == 0 {
		return "initial investment"
	}
	return fmt.Sprintf("year %d cash flow", t)
}
