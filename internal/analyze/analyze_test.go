package analyze

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Alias1177/CoinPredictor/internal/model"
	"github.com/rs/zerolog"
)

type recordingJournal struct {
	mu      sync.Mutex
	records []model.Forecast
	err     error
}

func (j *recordingJournal) Record(_ context.Context, f model.Forecast) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, f)
	return j.err
}

func (j *recordingJournal) Close() error { return nil }

func generateInput(id string, n int, price float64) model.MarketInput {
	chart := &model.MarketChart{}
	p := price
	for i := 0; i < n; i++ {
		ts := float64(i) * 3600000
		chart.Prices = append(chart.Prices, model.Point{ts, p})
		chart.TotalVolumes = append(chart.TotalVolumes, model.Point{ts, 1000})
		p *= 1.01
	}
	return model.MarketInput{
		Coin:  model.CoinData{ID: id, CurrentPrice: chart.Prices[n-1].Value(), PriceChangePercentage24h: 2},
		Chart: chart,
	}
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestAnalyze(t *testing.T) {
	journal := &recordingJournal{}
	a := New(zerolog.Nop(), WithJournal(journal), WithClock(fixedClock))

	f, err := a.Analyze(context.Background(), generateInput("bitcoin", 50, 100))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if f.Result.Prediction != model.Bullish {
		t.Errorf("prediction = %s, want bullish", f.Result.Prediction)
	}
	if !f.GeneratedAt.Equal(fixedClock()) {
		t.Errorf("GeneratedAt = %v", f.GeneratedAt)
	}
	if len(journal.records) != 1 || journal.records[0].Coin.ID != "bitcoin" {
		t.Errorf("journal records = %+v", journal.records)
	}
}

func TestAnalyzeRejectsInvalidSnapshot(t *testing.T) {
	journal := &recordingJournal{}
	a := New(zerolog.Nop(), WithJournal(journal))

	in := generateInput("broken", 50, 100)
	in.Coin.CurrentPrice = 0

	_, err := a.Analyze(context.Background(), in)
	if !errors.Is(err, model.ErrInvalidPrice) {
		t.Fatalf("got %v, want ErrInvalidPrice", err)
	}
	if len(journal.records) != 0 {
		t.Error("invalid snapshot should not be journaled")
	}
}

func TestAnalyzeRejectsNonPositiveChartPrice(t *testing.T) {
	journal := &recordingJournal{}
	a := New(zerolog.Nop(), WithJournal(journal))

	// A zero dip would become the nearest swing low and a zero support level.
	in := generateInput("dip", 50, 100)
	in.Chart.Prices[40][1] = 0

	f, err := a.Analyze(context.Background(), in)
	if !errors.Is(err, model.ErrInvalidSeries) {
		t.Fatalf("got %v, want ErrInvalidSeries", err)
	}
	if f != nil || len(journal.records) != 0 {
		t.Error("invalid chart should produce no forecast")
	}
}

func TestAnalyzeKeepsForecastWhenJournalFails(t *testing.T) {
	journal := &recordingJournal{err: errors.New("db down")}
	a := New(zerolog.Nop(), WithJournal(journal))

	f, err := a.Analyze(context.Background(), generateInput("bitcoin", 10, 100))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if f == nil {
		t.Fatal("expected forecast")
	}
}

func TestAnalyzeAll(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{"sequential", 1},
		{"parallel", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journal := &recordingJournal{}
			a := New(zerolog.Nop(), WithJournal(journal), WithWorkers(tt.workers))

			var inputs []model.MarketInput
			for i := 0; i < 20; i++ {
				inputs = append(inputs, generateInput(fmt.Sprintf("coin-%02d", i), 30+i, 10+float64(i)))
			}
			inputs[7].Coin.CurrentPrice = -5

			results, err := a.AnalyzeAll(context.Background(), inputs)
			if err != nil {
				t.Fatalf("AnalyzeAll: %v", err)
			}
			if len(results) != len(inputs) {
				t.Fatalf("got %d results, want %d", len(results), len(inputs))
			}

			for i, r := range results {
				if i == 7 {
					if !errors.Is(r.Err, model.ErrInvalidPrice) || r.Forecast != nil {
						t.Errorf("slot 7: got %+v", r)
					}
					continue
				}
				if r.Err != nil {
					t.Errorf("slot %d: unexpected error %v", i, r.Err)
					continue
				}
				if r.Forecast.Coin.ID != inputs[i].Coin.ID {
					t.Errorf("slot %d holds %s, want %s", i, r.Forecast.Coin.ID, inputs[i].Coin.ID)
				}
			}
			if len(journal.records) != len(inputs)-1 {
				t.Errorf("journaled %d forecasts, want %d", len(journal.records), len(inputs)-1)
			}
		})
	}
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := New(zerolog.Nop())
	results, err := a.AnalyzeAll(ctx, []model.MarketInput{generateInput("bitcoin", 40, 100)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if len(results) != 1 || !errors.Is(results[0].Err, context.Canceled) || results[0].Coin.ID != "bitcoin" {
		t.Errorf("unfinished slot = %+v", results)
	}
}
