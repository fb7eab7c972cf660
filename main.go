package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/lovebell/internal/pkg/config"
	"github.com/FACorreiaa/lovebell/internal/server"
	"github.com/FACorreiaa/lovebell/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, zap.String("service", cfg.Observability.ServiceName)); err != nil {
		return err
	}
	defer logger.Log.Sync()

	providers, err := server.InitObservability(cfg.Observability, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv := server.New(cfg, logger.Log)
	router := server.SetupRouter(cfg, logger.Log)
	if err := server.SetupAssets(router); err != nil {
		logger.Log.Error("Failed to setup assets", zap.Error(err))
		return err
	}
	srv.SetRouter(router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpServer := srv.HTTPServer()
	servers := []*http.Server{httpServer, providers.MetricsServer()}
	if cfg.PprofAddr != "" {
		servers = append(servers, server.NewPprofServer(cfg.PprofAddr))
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		if s == nil {
			continue
		}
		g.Go(func() error { return server.Serve(s, logger.Log) })
	}
	g.Go(func() error { return server.GracefulShutdown(gctx, logger.Log, servers...) })

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Log.Info("Graceful shutdown complete")
	return nil
}
