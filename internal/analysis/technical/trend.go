package technical

import "github.com/Alias1177/CoinPredictor/internal/model"

// trendThreshold is the minimum absolute slope that counts as a trend
const trendThreshold = 0.0001

// AnalyzeTrend classifies the ordinary least-squares slope of prices against their index
func AnalyzeTrend(prices []float64) model.Signal {
	if len(prices) < 2 {
		return model.Neutral
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i, p := range prices {
		x := float64(i)
		sumX += x
		sumY += p
		sumXY += x * p
		sumX2 += x * x
	}

	n := float64(len(prices))
	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)

	switch {
	case slope > trendThreshold:
		return model.Bullish
	case slope < -trendThreshold:
		return model.Bearish
	default:
		return model.Neutral
	}
}
