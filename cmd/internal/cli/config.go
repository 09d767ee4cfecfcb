package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"

	DBAdapterPGX  = "pgx"
	DBAdapterSQL  = "sql"
	DBAdapterSQLX = "sqlx"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the environment configuration of a command.
type Config struct {
	Store       string `env:"REGISTRY_STORE" envDefault:"file"`
	Document    string `env:"REGISTRY_FILE"`
	PostgresDSN string `env:"REGISTRY_POSTGRES_DSN"`
	DBAdapter   string `env:"REGISTRY_DB_ADAPTER" envDefault:"pgx"`
	LogLevel    string `env:"REGISTRY_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"REGISTRY_LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads the configuration from the environment.
// defaultDocument is used as the document key when REGISTRY_FILE is not set.
func LoadConfig(defaultDocument string) (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Document == "" {
		cfg.Document = defaultDocument
	}

	switch cfg.Store {
	case StoreFile:
	case StorePostgres:
		if cfg.PostgresDSN == "" {
			return Config{}, ErrMissingPostgresDSN
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}

	return cfg, nil
}
