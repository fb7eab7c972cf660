package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "LOG_LEVEL", "COOKIE_MAX_AGE", "COOKIE_SECURE", "DEFAULT_LANGUAGE", "PPROF_ADDR", "OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8091", cfg.ServerPort)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "/", cfg.Cookie.Path)
	assert.Equal(t, 2592000, cfg.Cookie.MaxAge)
	assert.False(t, cfg.Cookie.Secure)
	assert.Empty(t, cfg.PprofAddr)
	assert.Equal(t, "lovebell", cfg.Observability.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_MAX_AGE", "60")
	t.Setenv("DEFAULT_LANGUAGE", "zh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, 60, cfg.Cookie.MaxAge)
	assert.Equal(t, "zh", cfg.DefaultLanguage)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":      "loud",
		"COOKIE_MAX_AGE": "-5",
		"COOKIE_SECURE":  "maybe",
		"SERVER_PORT":    "http",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
