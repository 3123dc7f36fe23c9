package technical

import "github.com/Alias1177/CoinPredictor/internal/model"

const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// CalculateRSI calculates the Relative Strength Index using Wilder's smoothing
func CalculateRSI(prices []float64, period int) float64 {
	if period < 1 || len(prices) < period+1 {
		return 50.0 // Default value if not enough data
	}

	var gains, losses float64
	// Seed averages with the first period of changes
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change >= 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	// Smooth the rest of the series
	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change >= 0 {
			avgGain = (avgGain*float64(period-1) + change) / float64(period)
			avgLoss = (avgLoss * float64(period-1)) / float64(period)
		} else {
			avgGain = (avgGain * float64(period-1)) / float64(period)
			avgLoss = (avgLoss*float64(period-1) - change) / float64(period)
		}
	}

	if avgLoss == 0 {
		return 100.0
	}

	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

// MACD holds the latest MACD line, signal line and histogram
type MACD struct {
	Line      float64
	Signal    float64
	Histogram float64
}

// CalculateMACD calculates MACD(12, 26, 9).
//
// Only the latest MACD value is known here, so the signal line is the EMA of
// that value repeated nine times and the histogram is always close to zero.
func CalculateMACD(prices []float64) MACD {
	line := CalculateEMA(prices, macdFastPeriod) - CalculateEMA(prices, macdSlowPeriod)

	padded := make([]float64, macdSignalPeriod)
	for i := range padded {
		padded[i] = line
	}
	signal := CalculateEMA(padded, macdSignalPeriod)

	return MACD{
		Line:      line,
		Signal:    signal,
		Histogram: line - signal,
	}
}

// ClassifyMACD derives a direction from the current and previous histogram.
// A rising positive histogram is bullish, a falling negative one bearish.
func ClassifyMACD(histogram, previous float64) model.Signal {
	if histogram > 0 && histogram > previous {
		return model.Bullish
	}
	if histogram < 0 && histogram < previous {
		return model.Bearish
	}
	return model.Neutral
}
