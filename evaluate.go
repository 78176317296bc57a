package invest

// Evaluation is the outcome of evaluating a Request.
type Evaluation struct {
	DiscountRate float64 // fraction per period
	NPV          float64
	IRR          float64 // meaningful only if IRRFound
	IRRFound     bool
	Iterations   int // bisection steps spent on the IRR
}

// Evaluate computes the NPV of the request at its discount rate, and its IRR.
//
// The request is validated first: a discount rate at or below -100% or a non
// finite amount is an *InputError.
func Evaluate(r Request) (Evaluation, error) {
	rate := r.DiscountRatePercent.Rate()
	flows := r.CashFlows()
	if err := flows.Validate(rate); err != nil {
		return Evaluation{}, err
	}
	s := DefaultBisection.Solve(flows)
	return Evaluation{
		DiscountRate: rate,
		NPV:          NPV(flows, rate),
		IRR:          s.Rate,
		IRRFound:     s.Converged,
		Iterations:   s.Iterations,
	}, nil
}

// Accept reports whether the project creates value at the discount rate.
func (e Evaluation) Accept() bool { return e.NPV > 0 }

// Attractive reports whether the IRR exists and beats the discount rate.
func (e Evaluation) Attractive() bool { return e.IRRFound && e.IRR > e.DiscountRate }
