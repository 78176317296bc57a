package invest

import "math"

// Period is one line of a discounted cash flow schedule.
type Period struct {
	Year       int
	Flow       float64
	Factor     float64 // 1 / (1+rate)^Year
	Present    float64 // Flow discounted to year 0
	Cumulative float64 // sum of Present up to Year
}

// Schedule discounts each flow at rate. The Cumulative of the last period is
// NPV(flows, rate).
func Schedule(flows CashFlows, rate float64) []Period {
	periods := make([]Period, len(flows))
	var cumulative float64
	for t, cf := range flows {
		d := math.Pow(1+rate, float64(t))
		present := cf / d
		cumulative += present
		periods[t] = Period{Year: t, Flow: cf, Factor: 1 / d, Present: present, Cumulative: cumulative}
	}
	return periods
}

// Payback returns the first year at which the cumulative present value of a
// schedule is no longer negative. It returns false if that never happens.
func Payback(schedule []Period) (year int, ok bool) {
	for _, p := range schedule {
		if p.Cumulative >= 0 {
			return p.Year, true
		}
	}
	return 0, false
}
