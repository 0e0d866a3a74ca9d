package scoring

import "math"

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// round2 rounds to two decimal places for reporting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
