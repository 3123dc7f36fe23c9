package model

// TechnicalIndicators holds the indicator values computed for one forecast
type TechnicalIndicators struct {
	RSI              float64 `json:"rsi"`
	MACDSignal       Signal  `json:"macdSignal"`
	MACDValue        float64 `json:"macdValue"`
	MACDHistogram    float64 `json:"macdHistogram"`
	EMA20            float64 `json:"ema20"`
	EMA50            float64 `json:"ema50"`
	EMA200           float64 `json:"ema200"`
	BollingerUpper   float64 `json:"bollingerUpper"`
	BollingerMiddle  float64 `json:"bollingerMiddle"`
	BollingerLower   float64 `json:"bollingerLower"`
	BollingerWidth   float64 `json:"bollingerWidth"` // (upper-lower)/middle
	VolumeChange     float64 `json:"volumeChange"`   // % vs. 5-period average
	PriceVolumeTrend float64 `json:"priceVolumeTrend"`
}
