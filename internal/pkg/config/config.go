package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
)

type CookieConfig struct {
	Domain string
	Path   string
	MaxAge int
	Secure bool
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
}

type Config struct {
	ServerPort      string
	PprofAddr       string
	LogLevel        zapcore.Level
	DefaultLanguage string
	Cookie          CookieConfig
	Observability   ObservabilityConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnvOrDefault("SERVER_PORT", "8091"),
		PprofAddr:       os.Getenv("PPROF_ADDR"),
		DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "en"),
		Cookie: CookieConfig{
			Domain: os.Getenv("COOKIE_DOMAIN"),
			Path:   getEnvOrDefault("COOKIE_PATH", "/"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "lovebell"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
		},
	}

	level, err := zapcore.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	maxAge, err := strconv.Atoi(getEnvOrDefault("COOKIE_MAX_AGE", "2592000"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_MAX_AGE: %w", err)
	}
	if maxAge < 0 {
		return nil, fmt.Errorf("COOKIE_MAX_AGE must not be negative, got %d", maxAge)
	}
	cfg.Cookie.MaxAge = maxAge

	secure, err := strconv.ParseBool(getEnvOrDefault("COOKIE_SECURE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}
	cfg.Cookie.Secure = secure

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT %q", cfg.ServerPort)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
