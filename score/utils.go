package score

import "math"

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Round2 rounds to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
