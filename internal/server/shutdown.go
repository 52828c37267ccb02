package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownGrace = 5 * time.Second

// Serve runs every server until ctx is cancelled, then gives them
// shutdownGrace to finish in-flight requests. The first server that fails
// to start stops the others.
func Serve(ctx context.Context, logger *zap.Logger, servers ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			logger.Info("Server starting", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully", zap.Duration("grace", shutdownGrace))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		var shutdownErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		logger.Info("Server exiting")
		return shutdownErr
	})

	return g.Wait()
}
