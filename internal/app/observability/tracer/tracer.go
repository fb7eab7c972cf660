package tracer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// Providers owns the OpenTelemetry providers and the Prometheus scrape
// server.
type Providers struct {
	tp            *sdktrace.TracerProvider
	mp            *sdkmetric.MeterProvider
	metricsServer *http.Server
	logger        *zap.Logger
}

// InitOtelProviders sets the global tracer and meter providers. Traces are
// exported over OTLP/HTTP when otlpEndpoint (host:port) is set; metrics are
// served for Prometheus on metricsAddr.
func InitOtelProviders(serviceName, otlpEndpoint, metricsAddr string, logger *zap.Logger) (*Providers, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion("1.0.0"),
	)

	p := &Providers{logger: logger}

	if otlpEndpoint == "" {
		p.tp = sdktrace.NewTracerProvider(sdktrace.WithResource(res))
		logger.Info("Tracer provider without exporter")
	} else {
		traceExporter, err := otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(otlpEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			logger.Warn("Failed to create OTLP trace exporter, tracing locally only", zap.Error(err))
			p.tp = sdktrace.NewTracerProvider(sdktrace.WithResource(res))
		} else {
			p.tp = sdktrace.NewTracerProvider(
				sdktrace.WithResource(res),
				sdktrace.WithBatcher(traceExporter),
			)
			logger.Info("Tracer provider with OTLP exporter", zap.String("endpoint", otlpEndpoint))
		}
	}
	otel.SetTracerProvider(p.tp)

	promExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	p.mp = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	)
	otel.SetMeterProvider(p.mp)

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		p.metricsServer = &http.Server{Addr: metricsAddr, Handler: mux}
	}

	return p, nil
}

// MetricsServer is nil when no metrics address was configured.
func (p *Providers) MetricsServer() *http.Server {
	return p.metricsServer
}

func (p *Providers) Shutdown(ctx context.Context) error {
	var shutdownErr error
	if p.metricsServer != nil {
		if err := p.metricsServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("metrics server shutdown error: %w", err))
		}
	}
	if err := p.mp.Shutdown(ctx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("meter provider shutdown error: %w", err))
	}
	if err := p.tp.Shutdown(ctx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("tracer provider shutdown error: %w", err))
	}
	p.logger.Info("Observability providers stopped")
	return shutdownErr
}
