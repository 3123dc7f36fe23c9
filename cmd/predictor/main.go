package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alias1177/CoinPredictor/internal/analyze"
	"github.com/Alias1177/CoinPredictor/internal/config"
	"github.com/Alias1177/CoinPredictor/internal/database"
	"github.com/Alias1177/CoinPredictor/internal/marketdata"
	"github.com/Alias1177/CoinPredictor/internal/report"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{cfg.InputPath}
	}

	inputs, err := marketdata.LoadPaths(paths)
	if err != nil {
		log.Fatal().Err(err).Strs("paths", paths).Msg("load market bundles failed")
	}
	log.Info().Int("bundles", len(inputs)).Msg("Market bundles loaded")

	var journal database.Journal = database.NoopJournal{}
	if cfg.Journal.Enabled {
		db, err := database.New(ctx, cfg.Journal.ConnectionParams())
		if err != nil {
			log.Fatal().Err(err).Msg("connect forecast journal failed")
		}
		journal = db
		log.Info().Str("host", cfg.Journal.Host).Str("db", cfg.Journal.DBName).Msg("Forecast journal connected")
	}
	defer journal.Close()

	analyzer := analyze.New(log.Logger, analyze.WithJournal(journal), analyze.WithWorkers(cfg.Workers))

	results, err := analyzer.AnalyzeAll(ctx, inputs)
	if err != nil {
		log.Error().Err(err).Msg("analysis interrupted")
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	if err := report.Write(os.Stdout, cfg.OutputFormat, results); err != nil {
		log.Error().Err(err).Msg("write report failed")
	}

	log.Info().Int("forecasts", len(results)-failed).Int("failed", failed).Msg("Analysis finished")
}
