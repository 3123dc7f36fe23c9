package model

import "time"

// Forecast is one engine result tied to the asset and the moment it was made.
type Forecast struct {
	Coin        CoinData         `json:"coin"`
	Result      PredictionResult `json:"result"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
