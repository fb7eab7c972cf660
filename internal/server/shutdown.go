package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Serve runs srv until it fails or is shut down.
func Serve(srv *http.Server, logger *zap.Logger) error {
	logger.Info("Server starting", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// GracefulShutdown waits for ctx to be cancelled and then gives the servers
// five seconds to finish the requests they are handling.
func GracefulShutdown(ctx context.Context, logger *zap.Logger, servers ...*http.Server) error {
	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	logger.Info("Server exiting")
	return shutdownErr
}
