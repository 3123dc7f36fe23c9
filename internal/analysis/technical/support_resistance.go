package technical

import "sort"

// minExtremaSamples is the shortest series that is searched for local extrema
const minExtremaSamples = 10

// Levels holds the nearest support and resistance around a price
type Levels struct {
	Support    float64
	Resistance float64
}

// CalculateSupportResistance finds the nearest local minimum below and the nearest
// local maximum above currentPrice
func CalculateSupportResistance(prices []float64, currentPrice float64) Levels {
	if len(prices) < minExtremaSamples {
		return Levels{
			Support:    currentPrice * 0.9,
			Resistance: currentPrice * 1.1,
		}
	}

	// Strict swing lows and highs
	var lows, highs []float64
	for i := 1; i < len(prices)-1; i++ {
		if prices[i] < prices[i-1] && prices[i] < prices[i+1] {
			lows = append(lows, prices[i])
		}
		if prices[i] > prices[i-1] && prices[i] > prices[i+1] {
			highs = append(highs, prices[i])
		}
	}

	// Support: highest low under the price
	support := currentPrice * 0.85
	sort.Sort(sort.Reverse(sort.Float64Slice(lows)))
	for _, low := range lows {
		if low < currentPrice {
			support = low
			break
		}
	}

	// Resistance: lowest high over the price
	resistance := currentPrice * 1.15
	sort.Float64s(highs)
	for _, high := range highs {
		if high > currentPrice {
			resistance = high
			break
		}
	}

	return Levels{Support: support, Resistance: resistance}
}
