package finance

import "math"

// Presentation rounding. Applied once when a breakdown is built, never
// inside a running calculation.

func round0(v float64) float64 {
	return math.Round(v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
