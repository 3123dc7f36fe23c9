package technical

import "math"

// BollingerBands holds the latest band values. Width is relative to the middle band.
type BollingerBands struct {
	Upper  float64
	Middle float64
	Lower  float64
	Width  float64
}

// CalculateBollingerBands calculates Bollinger Bands over the last period prices
// using the population standard deviation
func CalculateBollingerBands(prices []float64, period int, multiplier float64) BollingerBands {
	if len(prices) == 0 {
		return BollingerBands{}
	}
	if period < 1 || len(prices) < period {
		last := prices[len(prices)-1]
		return BollingerBands{Upper: last * 1.1, Middle: last, Lower: last * 0.9, Width: 0.2}
	}

	window := prices[len(prices)-period:]
	middle := CalculateSMA(window)

	var variance float64
	for _, p := range window {
		variance += (p - middle) * (p - middle)
	}
	sd := math.Sqrt(variance / float64(period))

	upper := middle + sd*multiplier
	lower := middle - sd*multiplier

	width := 0.0
	if middle != 0 {
		width = (upper - lower) / middle
	}

	return BollingerBands{Upper: upper, Middle: middle, Lower: lower, Width: width}
}
