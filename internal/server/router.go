package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/lovebell/internal/app/handlers"
	"github.com/FACorreiaa/lovebell/internal/app/i18n"
	"github.com/FACorreiaa/lovebell/internal/app/middleware"
	"github.com/FACorreiaa/lovebell/internal/app/session"
	"github.com/FACorreiaa/lovebell/internal/pkg/config"
	"github.com/FACorreiaa/lovebell/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.OTELGinMiddleware(cfg.Observability.ServiceName))
	r.Use(middleware.SecurityMiddleware())

	lang, ok := i18n.ParseDefault(cfg.DefaultLanguage)
	if !ok {
		logger.Warn("Unsupported default language, using English", zap.String("language", cfg.DefaultLanguage))
		lang = language.English
	}

	base := handlers.NewBaseHandler(logger, session.CookieOptions{
		Path:   cfg.Cookie.Path,
		Domain: cfg.Cookie.Domain,
		MaxAge: cfg.Cookie.MaxAge,
		Secure: cfg.Cookie.Secure,
	}, lang)
	routes.Setup(r, routes.NewAppHandlers(base), logger)

	return r
}

// zapContextFunc returns the Zap context function for logging
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get(middleware.RequestIDHeader); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		return fields
	}
}
