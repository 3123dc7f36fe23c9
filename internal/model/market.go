package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPrice  = errors.New("current price must be a positive finite number")
	ErrInvalidChange = errors.New("24h price change must be a finite number")
	ErrInvalidSeries = errors.New("chart series must hold finite values, with positive prices and non-negative volumes")
)

// CoinData is the current market snapshot of a single asset, in the shape of
// the CoinGecko /coins/markets response.
type CoinData struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	CurrentPrice             float64 `json:"current_price"`
	TotalVolume              float64 `json:"total_volume,omitempty"`
	High24h                  float64 `json:"high_24h,omitempty"`
	Low24h                   float64 `json:"low_24h,omitempty"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	LastUpdated              string  `json:"last_updated,omitempty"`
}

// Validate checks the precondition the prediction engine relies on: a usable
// current price.
func (c CoinData) Validate() error {
	if !finite(c.CurrentPrice) || c.CurrentPrice <= 0 {
		return fmt.Errorf("coin %q: %w", c.ID, ErrInvalidPrice)
	}
	if !finite(c.PriceChangePercentage24h) {
		return fmt.Errorf("coin %q: %w", c.ID, ErrInvalidChange)
	}
	return nil
}

// Point is a [timestamp_ms, value] pair.
type Point [2]float64

func (p Point) Timestamp() float64 { return p[0] }
func (p Point) Value() float64     { return p[1] }

// MarketChart holds the historical series of an asset, oldest first, in the
// shape of the CoinGecko /market_chart response.
type MarketChart struct {
	Prices       []Point `json:"prices"`
	TotalVolumes []Point `json:"total_volumes"`
}

// Validate checks every sample of the chart. A nil chart is valid.
func (m *MarketChart) Validate() error {
	if m == nil {
		return nil
	}
	for i, p := range m.Prices {
		if v := p.Value(); !finite(v) || v <= 0 {
			return fmt.Errorf("price #%d (%v): %w", i, v, ErrInvalidSeries)
		}
	}
	for i, p := range m.TotalVolumes {
		if v := p.Value(); !finite(v) || v < 0 {
			return fmt.Errorf("volume #%d (%v): %w", i, v, ErrInvalidSeries)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Closes returns the price values of the chart.
func (m *MarketChart) Closes() []float64 {
	if m == nil {
		return nil
	}
	return values(m.Prices)
}

// Volumes returns the volume values of the chart.
func (m *MarketChart) Volumes() []float64 {
	if m == nil {
		return nil
	}
	return values(m.TotalVolumes)
}

func values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value()
	}
	return out
}

// MarketInput bundles everything needed to forecast one asset. Chart is nil
// when no history is available.
type MarketInput struct {
	Coin  CoinData     `json:"coin"`
	Chart *MarketChart `json:"market_chart"`
}
