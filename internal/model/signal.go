package model

// Signal is the directional tri-state shared by trend labels, the MACD signal
// and the final prediction.
type Signal string

const (
	Bullish Signal = "bullish"
	Bearish Signal = "bearish"
	Neutral Signal = "neutral"
)

// Valid reports whether s is one of the three known directions.
func (s Signal) Valid() bool {
	switch s {
	case Bullish, Bearish, Neutral:
		return true
	}
	return false
}

// SignalFromSign maps the sign of v onto a direction.
func SignalFromSign(v float64) Signal {
	switch {
	case v > 0:
		return Bullish
	case v < 0:
		return Bearish
	default:
		return Neutral
	}
}
