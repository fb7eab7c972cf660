package server

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/lovebell/internal/app/observability/metrics"
	"github.com/FACorreiaa/lovebell/internal/app/observability/tracer"
	"github.com/FACorreiaa/lovebell/internal/pkg/config"
)

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(cfg config.ObservabilityConfig, logger *zap.Logger) (*tracer.Providers, error) {
	providers, err := tracer.InitOtelProviders(cfg.ServiceName, cfg.OTLPEndpoint, cfg.MetricsAddr, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	if err := metrics.InitAppMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	logger.Info("Observability initialized", zap.String("metrics_endpoint", cfg.MetricsAddr+"/metrics"))

	return providers, nil
}
