package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Alias1177/CoinPredictor/internal/model"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// Journal stores produced forecasts.
type Journal interface {
	Record(ctx context.Context, f model.Forecast) error
	Close() error
}

// DB represents a database connection
type DB struct {
	*sql.DB
}

// ConnectionParams holds PostgreSQL connection parameters
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// ConnectTimeout bounds the ping retries.
	ConnectTimeout time.Duration
}

// DSN renders the params as a lib/pq connection string.
func (p ConnectionParams) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// New creates a new database connection
func New(ctx context.Context, params ConnectionParams) (*DB, error) {
	return Open(ctx, params.DSN(), params.ConnectTimeout)
}

// Open connects using a raw DSN, retrying the ping until timeout elapses.
func Open(ctx context.Context, dsn string, timeout time.Duration) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	operation := func() error {
		return db.PingContext(ctx)
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	if timeout > 0 {
		backoffStrategy.MaxElapsedTime = timeout
	}

	if err := backoff.Retry(operation, backoff.WithContext(backoffStrategy, ctx)); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres after retries: %w", err)
	}

	// Create tables if they don't exist
	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &DB{db}, nil
}

// createTables creates the necessary tables if they don't exist
func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS forecasts (
			id UUID PRIMARY KEY,
			coin_id TEXT NOT NULL,
			prediction TEXT NOT NULL,
			confidence INTEGER NOT NULL,
			next_target DOUBLE PRECISION NOT NULL,
			support_level DOUBLE PRECISION NOT NULL,
			reasons JSONB NOT NULL,
			indicators JSONB NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS forecasts_coin_created_idx
		ON forecasts (coin_id, created_at DESC)
	`)
	return err
}

// Record inserts a forecast row.
func (db *DB) Record(ctx context.Context, f model.Forecast) error {
	reasons, err := json.Marshal(f.Result.Reasons)
	if err != nil {
		return fmt.Errorf("encode reasons: %w", err)
	}
	indicators, err := json.Marshal(f.Result.Indicators)
	if err != nil {
		return fmt.Errorf("encode indicators: %w", err)
	}

	createdAt := f.GeneratedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO forecasts (
			id, coin_id, prediction, confidence, next_target, support_level,
			reasons, indicators, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		uuid.New(), f.Coin.ID, string(f.Result.Prediction), f.Result.Confidence,
		f.Result.NextTarget, f.Result.SupportLevel, reasons, indicators, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("insert forecast for %s: %w", f.Coin.ID, err)
	}

	return nil
}

// StoredForecast is a journal row read back.
type StoredForecast struct {
	ID         uuid.UUID
	CoinID     string
	Prediction model.Signal
	Confidence int
	NextTarget float64
	Support    float64
	Reasons    []string
	CreatedAt  time.Time
}

// Latest returns the most recent forecasts recorded for a coin.
func (db *DB) Latest(ctx context.Context, coinID string, limit int) ([]StoredForecast, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, coin_id, prediction, confidence, next_target, support_level, reasons, created_at
		FROM forecasts
		WHERE coin_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, coinID, limit)
	if err != nil {
		return nil, fmt.Errorf("query forecasts: %w", err)
	}
	defer rows.Close()

	var out []StoredForecast
	for rows.Next() {
		var (
			sf      StoredForecast
			reasons []byte
		)
		if err := rows.Scan(&sf.ID, &sf.CoinID, &sf.Prediction, &sf.Confidence,
			&sf.NextTarget, &sf.Support, &reasons, &sf.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		if err := json.Unmarshal(reasons, &sf.Reasons); err != nil {
			return nil, fmt.Errorf("decode reasons: %w", err)
		}
		out = append(out, sf)
	}

	return out, rows.Err()
}

// NoopJournal discards forecasts.
type NoopJournal struct{}

func (NoopJournal) Record(context.Context, model.Forecast) error { return nil }
func (NoopJournal) Close() error                                 { return nil }
