// Package analyze runs the prediction engine over batches of market bundles.
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/Alias1177/CoinPredictor/internal/analysis/prediction"
	"github.com/Alias1177/CoinPredictor/internal/database"
	"github.com/Alias1177/CoinPredictor/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Analyzer validates bundles, runs the engine and journals the forecasts.
type Analyzer struct {
	logger  zerolog.Logger
	journal database.Journal
	workers int
	now     func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithJournal sets where forecasts are recorded.
func WithJournal(j database.Journal) Option {
	return func(a *Analyzer) { a.journal = j }
}

// WithWorkers bounds how many bundles are analyzed at once.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithClock overrides the forecast timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New creates an Analyzer.
func New(logger zerolog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:  logger.With().Str("component", "analyzer").Logger(),
		journal: database.NoopJournal{},
		workers: 4,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result is the outcome for one bundle of a batch.
type Result struct {
	Coin     model.CoinData
	Forecast *model.Forecast
	Err      error
}

// Analyze forecasts a single bundle.
func (a *Analyzer) Analyze(ctx context.Context, in model.MarketInput) (*model.Forecast, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := in.Coin.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if err := in.Chart.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart for %s: %w", in.Coin.ID, err)
	}

	result := prediction.GeneratePrediction(in.Coin, in.Chart)
	f := &model.Forecast{
		Coin:        in.Coin,
		Result:      result,
		GeneratedAt: a.now().UTC(),
	}

	samples := len(in.Chart.Closes())
	a.logger.Debug().
		Str("coin", in.Coin.ID).
		Int("samples", samples).
		Str("prediction", string(result.Prediction)).
		Int("confidence", result.Confidence).
		Msg("Forecast generated")
	if samples < prediction.MinSamples {
		a.logger.Info().
			Str("coin", in.Coin.ID).
			Int("samples", samples).
			Msg("Not enough history, using 24h change forecast")
	}

	if err := a.journal.Record(ctx, *f); err != nil {
		a.logger.Warn().Err(err).Str("coin", in.Coin.ID).Msg("Failed to record forecast")
	}

	return f, nil
}

// AnalyzeAll forecasts every bundle with at most workers in flight. Results
// keep the input order and a bad bundle only fails its own slot. On
// cancellation the unfinished slots carry the context error.
func (a *Analyzer) AnalyzeAll(ctx context.Context, inputs []model.MarketInput) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			f, err := a.Analyze(gctx, in)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				a.logger.Error().Err(err).Str("coin", in.Coin.ID).Msg("Skipping bundle")
			}
			results[i] = Result{Coin: in.Coin, Forecast: f, Err: err}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		for i := range results {
			if results[i].Forecast == nil && results[i].Err == nil {
				results[i] = Result{Coin: inputs[i].Coin, Err: err}
			}
		}
	}
	return results, err
}
