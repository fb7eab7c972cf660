package metrics

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	GuardDecisionsTotal  metric.Int64Counter
	NavbarRenderDuration metric.Float64Histogram
	SessionHandoffsTotal metric.Int64Counter
	LogoutsTotal         metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
	initErr    error
)

// InitAppMetrics creates the instruments once, from the global
// MeterProvider. Without a configured provider the instruments are no-ops.
func InitAppMetrics() error {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("lovebell")
		m := &AppMetrics{}
		var err error

		m.GuardDecisionsTotal, err = meter.Int64Counter(
			"guard_decisions_total",
			metric.WithDescription("Total number of page guard decisions"),
			metric.WithUnit("{decision}"),
		)
		if err != nil {
			initErr = fmt.Errorf("create guard_decisions_total: %w", err)
			return
		}

		m.NavbarRenderDuration, err = meter.Float64Histogram(
			"navbar_render_duration_seconds",
			metric.WithDescription("Duration of navbar and interface updates in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			initErr = fmt.Errorf("create navbar_render_duration_seconds: %w", err)
			return
		}

		m.SessionHandoffsTotal, err = meter.Int64Counter(
			"session_handoffs_total",
			metric.WithDescription("Total number of sessions established by the login flow"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			initErr = fmt.Errorf("create session_handoffs_total: %w", err)
			return
		}

		m.LogoutsTotal, err = meter.Int64Counter(
			"logouts_total",
			metric.WithDescription("Total number of explicit logouts"),
			metric.WithUnit("{logout}"),
		)
		if err != nil {
			initErr = fmt.Errorf("create logouts_total: %w", err)
			return
		}

		appMetrics = m
	})
	return initErr
}

// Get returns the instruments, creating them on first use.
func Get() *AppMetrics {
	if err := InitAppMetrics(); err != nil {
		panic(err)
	}
	return appMetrics
}

func RecordGuardDecision(ctx context.Context, requirement, decision, reason string) {
	Get().GuardDecisionsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("requirement", requirement),
		attribute.String("decision", decision),
		attribute.String("reason", reason),
	))
}
