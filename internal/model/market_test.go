package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestCoinDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		coin    CoinData
		wantErr error
	}{
		{"valid", CoinData{ID: "bitcoin", CurrentPrice: 100, PriceChangePercentage24h: -3}, nil},
		{"zero price", CoinData{ID: "bitcoin"}, ErrInvalidPrice},
		{"negative price", CoinData{ID: "bitcoin", CurrentPrice: -1}, ErrInvalidPrice},
		{"nan price", CoinData{ID: "bitcoin", CurrentPrice: math.NaN()}, ErrInvalidPrice},
		{"inf price", CoinData{ID: "bitcoin", CurrentPrice: math.Inf(1)}, ErrInvalidPrice},
		{"nan change", CoinData{ID: "bitcoin", CurrentPrice: 1, PriceChangePercentage24h: math.NaN()}, ErrInvalidChange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coin.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarketChartValidate(t *testing.T) {
	tests := []struct {
		name    string
		chart   *MarketChart
		wantErr bool
	}{
		{"nil chart", nil, false},
		{"empty chart", &MarketChart{}, false},
		{"valid", &MarketChart{
			Prices:       []Point{{1, 10}, {2, 11}},
			TotalVolumes: []Point{{1, 0}, {2, 5}},
		}, false},
		{"zero price", &MarketChart{Prices: []Point{{1, 10}, {2, 0}, {3, 11}}}, true},
		{"negative price", &MarketChart{Prices: []Point{{1, -3}}}, true},
		{"nan price", &MarketChart{Prices: []Point{{1, math.NaN()}}}, true},
		{"inf volume", &MarketChart{Prices: []Point{{1, 1}}, TotalVolumes: []Point{{1, math.Inf(1)}}}, true},
		{"negative volume", &MarketChart{Prices: []Point{{1, 1}}, TotalVolumes: []Point{{1, -1}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chart.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidSeries) {
				t.Fatalf("got %v, want ErrInvalidSeries", err)
			}
		})
	}
}

func TestMarketChartNilSafe(t *testing.T) {
	var chart *MarketChart
	if chart.Closes() != nil || chart.Volumes() != nil {
		t.Fatal("nil chart should yield nil series")
	}
}

func TestMarketInputDecode(t *testing.T) {
	raw := `{
		"coin": {
			"id": "bitcoin",
			"symbol": "btc",
			"name": "Bitcoin",
			"current_price": 64000.5,
			"total_volume": 123456789,
			"price_change_percentage_24h": 2.5
		},
		"market_chart": {
			"prices": [[1700000000000, 63000], [1700003600000, 64000.5]],
			"total_volumes": [[1700000000000, 10], [1700003600000, 20]]
		}
	}`

	var in MarketInput
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if in.Coin.ID != "bitcoin" || in.Coin.CurrentPrice != 64000.5 || in.Coin.PriceChangePercentage24h != 2.5 {
		t.Errorf("unexpected coin: %+v", in.Coin)
	}
	if in.Chart == nil {
		t.Fatal("expected chart")
	}
	closes := in.Chart.Closes()
	if len(closes) != 2 || closes[1] != 64000.5 {
		t.Errorf("closes = %v", closes)
	}
	if ts := in.Chart.Prices[0].Timestamp(); ts != 1700000000000 {
		t.Errorf("timestamp = %v", ts)
	}
	if vols := in.Chart.Volumes(); len(vols) != 2 || vols[1] != 20 {
		t.Errorf("volumes = %v", vols)
	}
}

func TestMarketInputDecodeNullChart(t *testing.T) {
	var in MarketInput
	if err := json.Unmarshal([]byte(`{"coin":{"id":"eth","current_price":1},"market_chart":null}`), &in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if in.Chart != nil {
		t.Fatal("expected nil chart")
	}
}

func TestSignalFromSign(t *testing.T) {
	tests := []struct {
		v    float64
		want Signal
	}{
		{1, Bullish},
		{-0.1, Bearish},
		{0, Neutral},
	}
	for _, tt := range tests {
		if got := SignalFromSign(tt.v); got != tt.want {
			t.Errorf("SignalFromSign(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
	if Signal("sideways").Valid() {
		t.Error("unknown signal reported valid")
	}
}
