package invest

import "fmt"

// Percent is a rate expressed in percent: 8 stands for 8%.
type Percent float64

// PercentOf converts a fractional rate (0.08) into a Percent (8).
func PercentOf(rate float64) Percent { return Percent(rate * 100) }

// Rate returns p as a fraction: 8% is 0.08.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
