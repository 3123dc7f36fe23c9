package prediction

import "github.com/Alias1177/CoinPredictor/internal/model"

const (
	rsiOverbought      = 70.0
	rsiOversold        = 30.0
	rsiStrong          = 60.0
	rsiWeak            = 40.0
	bandExpansionWidth = 0.1
	volumeSurgePct     = 20.0
)

// Inputs is everything a rule may look at: the live price, the indicators
// and the trend labels
type Inputs struct {
	Price           float64
	Indicators      model.TechnicalIndicators
	ShortTermTrend  model.Signal
	MediumTermTrend model.Signal
	LongTermTrend   model.Signal
}

// Rule is one row of the scoring table. Side is Neutral for rules that only
// contribute a reason.
type Rule struct {
	Name   string
	Side   model.Signal
	Points int
	Reason string
	When   func(s *Inputs) bool
}

// Rules is the scoring table, evaluated top to bottom. Order decides which
// reasons survive truncation.
var Rules = []Rule{
	// RSI
	{"rsi_overbought", model.Bearish, 2, "RSI overbought (RSI > 70)",
		func(s *Inputs) bool { return s.Indicators.RSI > rsiOverbought }},
	{"rsi_oversold", model.Bullish, 2, "RSI oversold (RSI < 30)",
		func(s *Inputs) bool { return s.Indicators.RSI < rsiOversold }},
	{"rsi_strong", model.Bullish, 1, "RSI strong (RSI > 60)",
		func(s *Inputs) bool { return s.Indicators.RSI > rsiStrong && s.Indicators.RSI <= rsiOverbought }},
	{"rsi_weak", model.Bearish, 1, "RSI weak (RSI < 40)",
		func(s *Inputs) bool { return s.Indicators.RSI < rsiWeak && s.Indicators.RSI >= rsiOversold }},

	// MACD
	{"macd_bullish", model.Bullish, 2, "MACD bullish signal",
		func(s *Inputs) bool { return s.Indicators.MACDSignal == model.Bullish }},
	{"macd_bearish", model.Bearish, 2, "MACD bearish signal",
		func(s *Inputs) bool { return s.Indicators.MACDSignal == model.Bearish }},

	// Moving averages
	{"above_ema20", model.Bullish, 1, "Price above 20-day EMA",
		func(s *Inputs) bool { return s.Price > s.Indicators.EMA20 }},
	{"below_ema20", model.Bearish, 1, "Price below 20-day EMA",
		func(s *Inputs) bool { return s.Price < s.Indicators.EMA20 }},
	{"above_ema50", model.Bullish, 1, "Price above 50-day EMA",
		func(s *Inputs) bool { return s.Price > s.Indicators.EMA50 }},
	{"below_ema50", model.Bearish, 1, "Price below 50-day EMA",
		func(s *Inputs) bool { return s.Price < s.Indicators.EMA50 }},
	{"above_ema200", model.Bullish, 2, "Price above 200-day EMA (long-term uptrend)",
		func(s *Inputs) bool { return s.Price > s.Indicators.EMA200 }},
	{"below_ema200", model.Bearish, 2, "Price below 200-day EMA (long-term downtrend)",
		func(s *Inputs) bool { return s.Price < s.Indicators.EMA200 }},
	{"golden_cross", model.Bullish, 2, "20-day EMA above 50-day EMA (golden cross)",
		func(s *Inputs) bool { return s.Indicators.EMA20 > s.Indicators.EMA50 }},
	{"death_cross", model.Bearish, 2, "20-day EMA below 50-day EMA (death cross)",
		func(s *Inputs) bool { return s.Indicators.EMA20 < s.Indicators.EMA50 }},

	// Bollinger bands
	{"above_upper_band", model.Bearish, 2, "Price above upper Bollinger band (possibly overbought)",
		func(s *Inputs) bool { return s.Price > s.Indicators.BollingerUpper }},
	{"below_lower_band", model.Bullish, 2, "Price below lower Bollinger band (possibly oversold)",
		func(s *Inputs) bool { return s.Price < s.Indicators.BollingerLower }},
	{"bands_expanding_up", model.Bullish, 1, "Bollinger bands expanding with short-term uptrend (may keep rising)",
		func(s *Inputs) bool {
			return s.Indicators.BollingerWidth > bandExpansionWidth && s.ShortTermTrend == model.Bullish
		}},
	{"bands_expanding_down", model.Bearish, 1, "Bollinger bands expanding with short-term downtrend (may keep falling)",
		func(s *Inputs) bool {
			return s.Indicators.BollingerWidth > bandExpansionWidth && s.ShortTermTrend == model.Bearish
		}},
	{"bands_narrowing", model.Neutral, 0, "Bollinger bands narrowing (possible breakout ahead)",
		func(s *Inputs) bool { return s.Indicators.BollingerWidth <= bandExpansionWidth }},

	// Volume
	{"volume_surge_up", model.Bullish, 2, "Volume surging with rising price (strong bullish signal)",
		func(s *Inputs) bool {
			return s.Indicators.VolumeChange > volumeSurgePct && s.ShortTermTrend == model.Bullish
		}},
	{"volume_surge_down", model.Bearish, 2, "Volume surging with falling price (strong bearish signal)",
		func(s *Inputs) bool {
			return s.Indicators.VolumeChange > volumeSurgePct && s.ShortTermTrend == model.Bearish
		}},
	{"volume_surge_flat", model.Bullish, 1, "Volume surging (possible breakout ahead)",
		func(s *Inputs) bool {
			return s.Indicators.VolumeChange > volumeSurgePct && s.ShortTermTrend == model.Neutral
		}},
	{"volume_drop", model.Neutral, 0, "Volume dropping sharply (trend may reverse)",
		func(s *Inputs) bool {
			return s.Indicators.VolumeChange < -volumeSurgePct && s.ShortTermTrend != model.Neutral
		}},

	// Price-volume trend
	{"pvt_positive", model.Bullish, 1, "Price-volume trend positive (bullish)",
		func(s *Inputs) bool { return s.Indicators.PriceVolumeTrend > 0 }},
	{"pvt_negative", model.Bearish, 1, "Price-volume trend negative (bearish)",
		func(s *Inputs) bool { return s.Indicators.PriceVolumeTrend < 0 }},

	// Trends by horizon
	{"short_term_up", model.Bullish, 2, "Short-term trend bullish",
		func(s *Inputs) bool { return s.ShortTermTrend == model.Bullish }},
	{"short_term_down", model.Bearish, 2, "Short-term trend bearish",
		func(s *Inputs) bool { return s.ShortTermTrend == model.Bearish }},
	{"medium_term_up", model.Bullish, 3, "Medium-term trend bullish",
		func(s *Inputs) bool { return s.MediumTermTrend == model.Bullish }},
	{"medium_term_down", model.Bearish, 3, "Medium-term trend bearish",
		func(s *Inputs) bool { return s.MediumTermTrend == model.Bearish }},
	{"long_term_up", model.Bullish, 4, "Long-term trend bullish",
		func(s *Inputs) bool { return s.LongTermTrend == model.Bullish }},
	{"long_term_down", model.Bearish, 4, "Long-term trend bearish",
		func(s *Inputs) bool { return s.LongTermTrend == model.Bearish }},
}

// Score is the outcome of running the rule table
type Score struct {
	Bullish int
	Bearish int
	Reasons []string
}

// Evaluate runs rules against s in order
func Evaluate(rules []Rule, s *Inputs) Score {
	var score Score
	for _, r := range rules {
		if !r.When(s) {
			continue
		}
		switch r.Side {
		case model.Bullish:
			score.Bullish += r.Points
		case model.Bearish:
			score.Bearish += r.Points
		}
		score.Reasons = append(score.Reasons, r.Reason)
	}
	return score
}
