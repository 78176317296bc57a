package invest

import "math"

// Bisection searches the rate that zeroes the NPV of a series by repeatedly
// halving the bracket [Low, High].
//
// A root is found when NPV(Low) and NPV(High) have opposite signs. The search
// stops when |NPV| drops below Tolerance, or when the bracket cannot be
// halved any further in float64. The latter happens on large series where
// adjacent rates around the root differ in NPV by more than Tolerance.
//
// When the bracket holds no root the search drifts to the boundary where
// |NPV| is smallest and Solve reports that it did not converge.
type Bisection struct {
	Low, High     float64
	MaxIterations int
	Tolerance     float64
}

// DefaultBisection brackets rates between -100% and +100%.
var DefaultBisection = Bisection{Low: -1, High: 1, MaxIterations: 1000, Tolerance: 1e-6}

// Solution is the outcome of a Bisection.
type Solution struct {
	Rate       float64 // last midpoint evaluated
	Iterations int     // number of NPV evaluations
	Converged  bool    // Rate is a root of the NPV
}

// Solve runs the bisection on flows.
func (b Bisection) Solve(flows CashFlows) Solution {
	low, high := b.Low, b.High
	bracketed := opposite(NPV(flows, low), NPV(flows, high))
	var s Solution
	for s.Iterations < b.MaxIterations {
		s.Iterations++
		s.Rate = (low + high) / 2
		npv := NPV(flows, s.Rate)
		if math.Abs(npv) < b.Tolerance {
			s.Converged = true
			return s
		}
		if bracketed && (s.Rate == low || s.Rate == high) {
			// no float64 left between low and high
			s.Converged = true
			return s
		}
		if npv > 0 {
			// the root is at a higher rate
			low = s.Rate
		} else {
			high = s.Rate
		}
	}
	return s
}

// opposite reports whether a and b have opposite signs or one is zero.
// NaN is never opposite.
func opposite(a, b float64) bool {
	return (a <= 0 && b >= 0) || (a >= 0 && b <= 0)
}

// IRR returns the Internal Rate of Return of flows using DefaultBisection.
//
// When the search does not converge, the last midpoint is returned anyway: a
// single-amount series yields a bracket boundary (-1 for an outlay, +1 for an
// income). Use DefaultBisection.Solve to know whether a root was found.
func IRR(flows CashFlows) float64 { return DefaultBisection.Solve(flows).Rate }
