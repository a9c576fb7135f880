package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel      string
	LogFormat     string
	AcceptedCards []string
	OTLPEndpoint  string
	MetricsAddr   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using environment", "error", err)
	}

	cfg := &Config{
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		AcceptedCards: splitList(os.Getenv("ACCEPTED_CARDS")),
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	slog.Info("config loaded", "log_level", cfg.LogLevel, "log_format", cfg.LogFormat, "accepted_cards", len(cfg.AcceptedCards), "otlp_endpoint", cfg.OTLPEndpoint)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
