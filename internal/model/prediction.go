package model

// PredictionResult is the output of the prediction engine
type PredictionResult struct {
	Prediction      Signal              `json:"prediction"`
	Confidence      int                 `json:"confidence"` // 50..95
	NextTarget      float64             `json:"nextTarget"`
	SupportLevel    float64             `json:"supportLevel"`
	Indicators      TechnicalIndicators `json:"indicators"`
	ShortTermTrend  Signal              `json:"shortTermTrend"`
	MediumTermTrend Signal              `json:"mediumTermTrend"`
	LongTermTrend   Signal              `json:"longTermTrend"`
	Reasons         []string            `json:"reasons"`
}
