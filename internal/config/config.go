package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ErrMissingAPIKey aborts startup: without an upstream key every live
// request would fail with an auth error anyway.
var ErrMissingAPIKey = errors.New("RIOT_API_KEY is required")

type Config struct {
	RiotAPIKey    string
	ServerPort    string
	LogLevel      string
	AllowFallback bool
}

// Load reads configuration from a .env file or the environment. A missing
// Riot API key is a configuration error, not a retryable condition: the
// whole app refuses to start without it.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowFallback: getEnvBool("ALLOW_FALLBACK", true),
	}

	if cfg.RiotAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Bool("allow_fallback", cfg.AllowFallback).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
