package prediction

import (
	"math"

	"github.com/Alias1177/CoinPredictor/internal/analysis/technical"
	"github.com/Alias1177/CoinPredictor/internal/model"
)

const (
	// MinSamples is the shortest price history that gets a full analysis
	MinSamples = 30

	rsiPeriod          = 14
	bollingerPeriod    = 20
	bollingerDeviation = 2.0
	shortTermWindow    = 7
	mediumTermWindow   = 30

	decisionMargin = 3
	minConfidence  = 50
	maxConfidence  = 95
	maxReasons     = 5
)

// GeneratePrediction produces a forecast for coin from its price history.
// chart may be nil; histories shorter than MinSamples fall back to a forecast
// based on the 24h price change alone. The caller must have validated coin and chart.
func GeneratePrediction(coin model.CoinData, chart *model.MarketChart) model.PredictionResult {
	if chart == nil || len(chart.Prices) < MinSamples {
		return fallbackPrediction(coin)
	}

	prices := chart.Closes()
	volumes := chart.Volumes()
	currentPrice := coin.CurrentPrice

	// 1. Indicators
	macd := technical.CalculateMACD(prices)
	bands := technical.CalculateBollingerBands(prices, bollingerPeriod, bollingerDeviation)

	// No MACD history is kept, so the histogram is compared with itself.
	indicators := model.TechnicalIndicators{
		RSI:              technical.CalculateRSI(prices, rsiPeriod),
		MACDSignal:       technical.ClassifyMACD(macd.Histogram, macd.Histogram),
		MACDValue:        macd.Line,
		MACDHistogram:    macd.Histogram,
		EMA20:            technical.CalculateEMA(prices, 20),
		EMA50:            technical.CalculateEMA(prices, 50),
		EMA200:           technical.CalculateEMA(prices, 200),
		BollingerUpper:   bands.Upper,
		BollingerMiddle:  bands.Middle,
		BollingerLower:   bands.Lower,
		BollingerWidth:   bands.Width,
		VolumeChange:     technical.CalculateVolumeChange(volumes),
		PriceVolumeTrend: technical.CalculatePVT(prices, volumes),
	}

	// 2. Trends per horizon
	inputs := &Inputs{
		Price:           currentPrice,
		Indicators:      indicators,
		ShortTermTrend:  technical.AnalyzeTrend(tail(prices, shortTermWindow)),
		MediumTermTrend: technical.AnalyzeTrend(tail(prices, mediumTermWindow)),
		LongTermTrend:   technical.AnalyzeTrend(prices),
	}

	// 3. Key levels
	levels := technical.CalculateSupportResistance(prices, currentPrice)

	// 4. Scoring
	score := Evaluate(Rules, inputs)
	direction := Decide(score.Bullish, score.Bearish)

	return model.PredictionResult{
		Prediction:      direction,
		Confidence:      Confidence(score.Bullish, score.Bearish),
		NextTarget:      Target(direction, levels),
		SupportLevel:    levels.Support,
		Indicators:      indicators,
		ShortTermTrend:  inputs.ShortTermTrend,
		MediumTermTrend: inputs.MediumTermTrend,
		LongTermTrend:   inputs.LongTermTrend,
		Reasons:         topReasons(score.Reasons),
	}
}

// Decide picks a direction once one side leads by more than the margin
func Decide(bullish, bearish int) model.Signal {
	switch {
	case bullish > bearish+decisionMargin:
		return model.Bullish
	case bearish > bullish+decisionMargin:
		return model.Bearish
	default:
		return model.Neutral
	}
}

// Confidence turns the point imbalance into a percentage in [50, 95]
func Confidence(bullish, bearish int) int {
	base := 0.0
	if total := bullish + bearish; total > 0 {
		base = math.Abs(float64(bullish-bearish)) / float64(total) * 100
	}
	return clampConfidence(math.Round(base + minConfidence))
}

// Target selects the next price target for a direction
func Target(direction model.Signal, levels technical.Levels) float64 {
	switch direction {
	case model.Bullish:
		return levels.Resistance
	case model.Bearish:
		return levels.Support
	default:
		return (levels.Support + levels.Resistance) / 2
	}
}

func clampConfidence(v float64) int {
	return int(math.Min(math.Max(v, minConfidence), maxConfidence))
}

func tail(values []float64, n int) []float64 {
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}

func topReasons(reasons []string) []string {
	n := min(len(reasons), maxReasons)
	out := make([]string, n)
	copy(out, reasons[:n])
	return out
}
