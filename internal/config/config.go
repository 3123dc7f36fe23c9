package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Alias1177/CoinPredictor/internal/database"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	LogLevel     string  `yaml:"log_level"`
	InputPath    string  `yaml:"input_path"`
	OutputFormat string  `yaml:"output_format"`
	Workers      int     `yaml:"workers"`
	Journal      Journal `yaml:"journal"`
}

// Journal configures the Postgres forecast journal.
type Journal struct {
	Enabled        bool   `yaml:"enabled"`
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	DBName         string `yaml:"dbname"`
	SSLMode        string `yaml:"sslmode"`
	ConnectTimeout int    `yaml:"connect_timeout"` // seconds
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		LogLevel:     "info",
		InputPath:    "data",
		OutputFormat: "table",
		Workers:      4,
		Journal: Journal{
			Host:           "localhost",
			Port:           "5432",
			User:           "postgres",
			DBName:         "predictor",
			SSLMode:        "disable",
			ConnectTimeout: 30,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_PATH, and environment variables, in that order.
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.InputPath = getEnvWithDefault("INPUT_PATH", cfg.InputPath)
	cfg.OutputFormat = getEnvWithDefault("OUTPUT_FORMAT", cfg.OutputFormat)
	cfg.Workers = getEnvIntWithDefault("WORKERS", cfg.Workers)

	cfg.Journal.Enabled = getEnvBoolWithDefault("JOURNAL_ENABLED", cfg.Journal.Enabled)
	cfg.Journal.Host = getEnvWithDefault("DB_HOST", cfg.Journal.Host)
	cfg.Journal.Port = getEnvWithDefault("DB_PORT", cfg.Journal.Port)
	cfg.Journal.User = getEnvWithDefault("DB_USER", cfg.Journal.User)
	cfg.Journal.Password = getEnvWithDefault("DB_PASSWORD", cfg.Journal.Password)
	cfg.Journal.DBName = getEnvWithDefault("DB_NAME", cfg.Journal.DBName)
	cfg.Journal.SSLMode = getEnvWithDefault("DB_SSLMODE", cfg.Journal.SSLMode)
	cfg.Journal.ConnectTimeout = getEnvIntWithDefault("DB_CONNECT_TIMEOUT", cfg.Journal.ConnectTimeout)

	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("Config file not found, using defaults")
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("output_format must be table or json, got %q", c.OutputFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Journal.Enabled {
		if c.Journal.Host == "" {
			return fmt.Errorf("journal.host is required when the journal is enabled")
		}
		if c.Journal.DBName == "" {
			return fmt.Errorf("journal.dbname is required when the journal is enabled")
		}
	}
	return nil
}

// ConnectionParams converts the journal settings for the database package.
func (j Journal) ConnectionParams() database.ConnectionParams {
	return database.ConnectionParams{
		Host:           j.Host,
		Port:           j.Port,
		User:           j.User,
		Password:       j.Password,
		DBName:         j.DBName,
		SSLMode:        j.SSLMode,
		ConnectTimeout: time.Duration(j.ConnectTimeout) * time.Second,
	}
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
