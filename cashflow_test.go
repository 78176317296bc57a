package invest

import (
	"errors"
	"math"
	"testing"
)

func TestNPV(t *testing.T) {
	tests := []struct {
		name  string
		flows CashFlows
		rate  float64
		want  float64
	}{
		{name: "break-even single period", flows: CashFlows{-100, 110}, rate: 0.10, want: 0},
		{name: "zero rate is the raw sum", flows: CashFlows{-100, 60, 60}, rate: 0, want: 20},
		{name: "three years at 8%", flows: CashFlows{-1000, 400, 400, 400}, rate: 0.08, want: 30.838794899151424},
		{name: "initial outlay only", flows: CashFlows{-100}, rate: 0.25, want: -100},
		{name: "initial income only", flows: CashFlows{42}, rate: -0.5, want: 42},
		{name: "negative rate", flows: CashFlows{-100, 50}, rate: -0.5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NPV(tt.flows, tt.rate); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NPV(%v, %v) = %v want %v", tt.flows, tt.rate, got, tt.want)
			}
		})
	}
}

func TestNPVIsPure(t *testing.T) {
	flows := CashFlows{-1000, 321.5, 400.25, 512.125, 17}
	a := NPV(flows, 0.0731)
	b := NPV(flows, 0.0731)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Errorf("NPV() is not deterministic: %v != %v", a, b)
	}
	if flows[1] != 321.5 {
		t.Errorf("NPV() modified its input: %v", flows)
	}
}

func TestNPVSingularity(t *testing.T) {
	// At -100% every future flow is divided by zero.
	if got := NPV(CashFlows{-100, 110}, -1); !math.IsInf(got, 1) {
		t.Errorf("NPV(_, -1) = %v want +Inf", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		flows     CashFlows
		rate      float64
		wantField string
	}{
		{name: "valid", flows: CashFlows{-100, 110}, rate: 0.1},
		{name: "single flow", flows: CashFlows{-100}, rate: 0},
		{name: "empty", flows: CashFlows{}, rate: 0.1, wantField: "cash flows"},
		{name: "rate at singularity", flows: CashFlows{-100, 110}, rate: -1, wantField: "discount rate"},
		{name: "rate below singularity", flows: CashFlows{-100, 110}, rate: -1.5, wantField: "discount rate"},
		{name: "NaN rate", flows: CashFlows{-100, 110}, rate: math.NaN(), wantField: "discount rate"},
		{name: "infinite investment", flows: CashFlows{math.Inf(-1), 110}, rate: 0.1, wantField: "initial investment"},
		{name: "NaN flow", flows: CashFlows{-100, 10, math.NaN()}, rate: 0.1, wantField: "year 2 cash flow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flows.Validate(tt.rate)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			var ie *InputError
			if !errors.As(err, &ie) {
				t.Fatalf("Validate() error = %v, want an *InputError", err)
			}
			if ie.Field != tt.wantField {
				t.Errorf("Validate() field = %q want %q", ie.Field, tt.wantField)
			}
			if !errors.Is(err, ErrInput) {
				t.Errorf("errors.Is(%v, ErrInput) = false", err)
			}
		})
	}
}
