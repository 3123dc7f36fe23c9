package technical

// CalculateSMA returns the simple average of values, 0 for an empty slice.
// The second pass corrects the rounding of the plain sum, so a constant
// series averages to exactly its value.
func CalculateSMA(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var residual float64
	for _, v := range values {
		residual += v - mean
	}

	return mean + residual/n
}

// CalculateEMA calculates the exponential moving average over the whole series
func CalculateEMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if period < 1 || len(prices) < period {
		return prices[len(prices)-1] // Return last price if not enough data
	}

	// Seed with the simple average of the first period
	ema := CalculateSMA(prices[:period])

	// (p-ema)*multiplier + ema keeps a constant series fixed; p*k + ema*(1-k) drifts
	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
	}

	return ema
}

// lastN returns the trailing n values (all of them if fewer)
func lastN(values []float64, n int) []float64 {
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}
