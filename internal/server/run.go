package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Run serves the API on cfg.Address until ctx is cancelled, then drains
// in-flight requests.
func Run(ctx context.Context, cfg *Config, logger *zap.Logger, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg.BodySizeBytes(), version),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown did not complete",
				zap.String("op", "server.Run"),
				zap.Error(err),
			)
		}
	}()

	logger.Info(fmt.Sprintf("listening on %s", cfg.Address),
		zap.String("op", "server.Run"),
		zap.Int64("maxBodySize", cfg.BodySizeBytes()),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
