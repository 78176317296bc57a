package invest

import (
	"math"
	"testing"
)

func TestIRR(t *testing.T) {
	tests := []struct {
		name  string
		flows CashFlows
		want  float64
	}{
		{name: "50% single period", flows: CashFlows{-100, 150}, want: 0.5},
		{name: "10% single period", flows: CashFlows{-100, 110}, want: 0.1},
		{name: "three years annuity", flows: CashFlows{-1000, 400, 400, 400}, want: 0.0970102},
		{name: "two years", flows: CashFlows{-100, 60, 60}, want: 0.1306624},
		{name: "negative return", flows: CashFlows{-100, 80}, want: -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IRR(tt.flows)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("IRR(%v) = %v want %v", tt.flows, got, tt.want)
			}
			if npv := NPV(tt.flows, got); math.Abs(npv) >= DefaultBisection.Tolerance {
				t.Errorf("NPV(%v, IRR) = %v want |NPV| < %v", tt.flows, npv, DefaultBisection.Tolerance)
			}
		})
	}
}

func TestIRRConventionalSeries(t *testing.T) {
	// Outlay first, then incomes: one sign change, so NPV decreases with the
	// rate and the root is found as long as it lies in (-1, 1).
	series := []CashFlows{
		{-500, 100, 200, 300},
		{-1000, 100, 100, 100, 100, 1100},
		{-250, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-10, 1, 1, 1, 1, 12},
	}
	for _, flows := range series {
		s := DefaultBisection.Solve(flows)
		if !s.Converged {
			t.Errorf("Solve(%v) did not converge after %d iterations", flows, s.Iterations)
			continue
		}
		if npv := NPV(flows, s.Rate); math.Abs(npv) >= DefaultBisection.Tolerance {
			t.Errorf("NPV(%v, %v) = %v want |NPV| < %v", flows, s.Rate, npv, DefaultBisection.Tolerance)
		}
	}
}

func TestIRRSingleFlow(t *testing.T) {
	// A series without future flows has a constant NPV, so there is no root:
	// the search collapses on the bracket boundary and IRR returns it.
	tests := []struct {
		name  string
		flows CashFlows
		want  float64
	}{
		{name: "outlay only", flows: CashFlows{-100}, want: -1},
		{name: "income only", flows: CashFlows{100}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IRR(tt.flows)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IRR(%v) = %v want %v", tt.flows, got, tt.want)
			}
			s := DefaultBisection.Solve(tt.flows)
			if s.Converged {
				t.Errorf("Solve(%v).Converged = true want false", tt.flows)
			}
			if s.Iterations != DefaultBisection.MaxIterations {
				t.Errorf("Solve(%v).Iterations = %d want %d", tt.flows, s.Iterations, DefaultBisection.MaxIterations)
			}
		})
	}
}

func TestIRROutOfBracket(t *testing.T) {
	// The true IRR of {-100, 300} is 200%, beyond the [-1, 1] bracket.
	s := DefaultBisection.Solve(CashFlows{-100, 300})
	if s.Converged {
		t.Errorf("Solve().Converged = true want false")
	}
	if math.Abs(s.Rate-1) > 1e-9 {
		t.Errorf("Solve().Rate = %v want the upper boundary 1", s.Rate)
	}

	// A wider bracket finds it.
	wide := Bisection{Low: -1, High: 10, MaxIterations: 1000, Tolerance: 1e-6}
	s = wide.Solve(CashFlows{-100, 300})
	if !s.Converged || math.Abs(s.Rate-2) > 1e-4 {
		t.Errorf("wide Solve() = %+v want a converged rate of 2", s)
	}
}

func TestBisectionIterations(t *testing.T) {
	// With a midpoint exactly on the root the first step converges.
	s := DefaultBisection.Solve(CashFlows{-100, 100})
	if !s.Converged || s.Iterations != 1 || s.Rate != 0 {
		t.Errorf("Solve() = %+v want {Rate:0 Iterations:1 Converged:true}", s)
	}

	capped := Bisection{Low: -1, High: 1, MaxIterations: 3, Tolerance: 1e-12}
	s = capped.Solve(CashFlows{-1000, 400, 400, 400})
	if s.Converged || s.Iterations != 3 {
		t.Errorf("capped Solve() = %+v want 3 iterations without convergence", s)
	}
	// midpoints 0, 0.5, 0.25: the last one is returned.
	if s.Rate != 0.25 {
		t.Errorf("capped Solve().Rate = %v want 0.25", s.Rate)
	}
}

func TestIRRLargeAmounts(t *testing.T) {
	// Around the root, adjacent float64 rates give NPVs further apart than
	// the tolerance: the search ends on a collapsed bracket.
	tests := []struct {
		name  string
		flows CashFlows
		want  float64
	}{
		{name: "1e10", flows: CashFlows{-5e10, 1.3e10, 1.3e10, 1.3e10, 1.3e10, 1.3e10}, want: 0.0943489},
		{name: "1e12", flows: CashFlows{-1e12, 4e11, 4e11, 4e11}, want: 0.0970103},
		{name: "1e15", flows: CashFlows{-1e15, 4e14, 4e14, 4e14}, want: 0.0970103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultBisection.Solve(tt.flows)
			if !s.Converged {
				t.Errorf("Solve(%v) = %+v want converged", tt.flows, s)
			}
			if math.Abs(s.Rate-tt.want) > 1e-6 {
				t.Errorf("Solve(%v).Rate = %v want %v", tt.flows, s.Rate, tt.want)
			}
			if s.Iterations >= DefaultBisection.MaxIterations {
				t.Errorf("Solve(%v).Iterations = %d want fewer than %d", tt.flows, s.Iterations, DefaultBisection.MaxIterations)
			}
		})
	}
}
