package prediction

import (
	"math"

	"github.com/Alias1177/CoinPredictor/internal/model"
)

const fallbackReason = "Simple forecast based on the 24h price change"

// fallbackPrediction forecasts from the 24h change when there is not enough history
func fallbackPrediction(coin model.CoinData) model.PredictionResult {
	price := coin.CurrentPrice
	change := coin.PriceChangePercentage24h

	return model.PredictionResult{
		Prediction:      model.SignalFromSign(change),
		Confidence:      int(math.Min(math.Round(math.Abs(change)*2+minConfidence), maxConfidence)),
		NextTarget:      price * 1.1,
		SupportLevel:    price * 0.9,
		Indicators:      defaultIndicators(price),
		ShortTermTrend:  model.Neutral,
		MediumTermTrend: model.Neutral,
		LongTermTrend:   model.Neutral,
		Reasons:         []string{fallbackReason},
	}
}

// defaultIndicators is the neutral indicator set centred on price
func defaultIndicators(price float64) model.TechnicalIndicators {
	return model.TechnicalIndicators{
		RSI:             50,
		MACDSignal:      model.Neutral,
		EMA20:           price,
		EMA50:           price,
		EMA200:          price,
		BollingerUpper:  price * 1.1,
		BollingerMiddle: price,
		BollingerLower:  price * 0.9,
		BollingerWidth:  0.2,
	}
}
