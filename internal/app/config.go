package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidLogFormat is returned for a log format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log-format: must be 'text' or 'json'")
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MenuPath string `env:"PIZZA_MENU"` // hcl file or directory, optional

	LogFormat string `env:"PIZZA_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"PIZZA_LOG_LEVEL" envDefault:"warn"`
}

// EnvDefaults reads configuration defaults from the environment. Variables
// from the given dotenv files are loaded first without overriding the
// process environment; with no files, a .env in the working directory is
// used if present.
func EnvDefaults(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("failed to load env files: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, ErrInvalidLogFormat
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, ErrInvalidLogLevel
	}

	return &cfg, nil
}
