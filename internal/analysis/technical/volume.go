package technical

const (
	volumeWindow  = 7
	volumeAverage = 5
)

// CalculatePVT calculates the Price-Volume Trend: the sum of each period's
// return weighted by that period's volume
func CalculatePVT(prices, volumes []float64) float64 {
	if len(prices) < 2 || len(volumes) < 2 {
		return 0.0
	}

	n := min(len(prices), len(volumes))

	var pvt float64
	for i := 1; i < n; i++ {
		if prices[i-1] == 0 {
			continue
		}
		pvt += (prices[i] - prices[i-1]) / prices[i-1] * volumes[i]
	}

	return pvt
}

// CalculateVolumeChange returns the percent change of the latest volume against
// the average of the first five of the last seven volumes
func CalculateVolumeChange(volumes []float64) float64 {
	if len(volumes) == 0 {
		return 0.0 // No volume data available
	}

	recent := lastN(volumes, volumeWindow)

	var sum float64
	for _, v := range recent[:min(volumeAverage, len(recent))] {
		sum += v
	}
	avg := sum / volumeAverage
	if avg == 0 {
		return 0.0
	}

	latest := recent[len(recent)-1]
	return (latest - avg) / avg * 100
}
