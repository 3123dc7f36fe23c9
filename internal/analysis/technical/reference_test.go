package technical

import (
	"testing"

	"github.com/markcheno/go-talib"
)

// Cross-check against TA-Lib on series long enough that both sides use the
// same seeding.

func TestCalculateRSI_MatchesTALib(t *testing.T) {
	for _, n := range []int{15, 30, 64, 200} {
		prices := generatePrices(n, wave)
		want := talib.Rsi(prices, 14)
		assertClose(t, "RSI", CalculateRSI(prices, 14), want[len(want)-1], 1e-6)
	}
}

func TestCalculateEMA_MatchesTALib(t *testing.T) {
	prices := generatePrices(250, wave)
	for _, period := range []int{12, 20, 26, 50, 200} {
		want := talib.Ema(prices, period)
		assertClose(t, "EMA", CalculateEMA(prices, period), want[len(want)-1], 1e-6)
	}
}

func TestCalculateBollingerBands_MatchesTALib(t *testing.T) {
	prices := generatePrices(80, wave)
	upper, middle, lower := talib.BBands(prices, 20, 2, 2, talib.SMA)
	last := len(prices) - 1

	bb := CalculateBollingerBands(prices, 20, 2)
	assertClose(t, "upper", bb.Upper, upper[last], 1e-6)
	assertClose(t, "middle", bb.Middle, middle[last], 1e-6)
	assertClose(t, "lower", bb.Lower, lower[last], 1e-6)
}
