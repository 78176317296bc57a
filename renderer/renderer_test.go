package renderer

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/invest"
	"github.com/etnz/invest/date"
	"github.com/google/go-cmp/cmp"
)

var fixGolden = flag.Bool("fix-golden", false, "rewrite the golden files in testdata with the current output")

// TestFixGoldenIsOff prevents committing with the fix mode enabled.
func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Error("-fix-golden is on, golden files are not being checked")
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		golden string
		got    string
	}{
		{
			golden: "evaluation_accept.txt",
			got: Evaluation(invest.Evaluation{
				DiscountRate: 0.08,
				NPV:          30.838794899151424,
				IRR:          0.09701025765389204,
				IRRFound:     true,
			}),
		},
		{
			golden: "evaluation_reject.txt",
			got: Evaluation(invest.Evaluation{
				DiscountRate: 0.12,
				NPV:          -39.26749271137038,
				IRR:          0.09701025765389204,
				IRRFound:     true,
			}),
		},
		{
			golden: "evaluation_undefined.txt",
			got: Evaluation(invest.Evaluation{
				DiscountRate: 0.08,
				NPV:          -100,
				IRR:          -1,
			}),
		},
		{
			golden: "quote.txt",
			got: Quote(invest.Quote{
				Ticker: "AAPL",
				Date:   date.New(2025, 7, 1),
				Close:  invest.M(207.82, "USD"),
			}),
		},
		{
			golden: "quote_undated.txt",
			got:    Quote(invest.Quote{Ticker: "MCD.US", Close: invest.M(294.55, "USD")}),
		},
		{
			golden: "schedule_accept.md",
			got: Schedule(invest.Request{
				DiscountRatePercent: 8,
				InitialInvestment:   -1000,
				YearlyCashFlows:     []float64{400, 400, 400},
			}),
		},
		{
			golden: "schedule_reject.md",
			got: Schedule(invest.Request{
				DiscountRatePercent: 12,
				InitialInvestment:   -1000,
				YearlyCashFlows:     []float64{400, 400, 400},
			}),
		},
		{
			golden: "form.txt",
			got: Form(invest.Form{
				Rate:       "8",
				Investment: "-1000",
				Years:      "3",
				Flows:      []string{"400", "400", ""},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			path := filepath.Join("testdata", tt.golden)
			if *fixGolden {
				if err := os.WriteFile(path, []byte(tt.got), 0o644); err != nil {
					t.Fatalf("failed to fix %s: %v", path, err)
				}
				return
			}
			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read golden file: %v", err)
			}
			if diff := cmp.Diff(string(want), tt.got); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.golden, diff)
			}
		})
	}
}

func TestEvaluationRoundsNPV(t *testing.T) {
	got := Evaluation(invest.Evaluation{NPV: 31.166, IRR: 0.1, IRRFound: true})
	want := "NPV: 31.17\n"
	if got[:len(want)] != want {
		t.Errorf("Evaluation() first line = %q, want %q", got[:len(want)], want)
	}
}
