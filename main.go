package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/pkg/config"
	"github.com/FACorreiaa/foresight-shell/internal/server"
	"github.com/FACorreiaa/foresight-shell/pkg/logger"
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

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel),
		zap.String("service", cfg.Observability.ServiceName),
		zap.String("version", cfg.Shell.Version),
	); err != nil {
		return err
	}
	appLogger := logger.Log
	defer appLogger.Sync()
	zap.ReplaceGlobals(appLogger)

	otelShutdown, err := server.InitObservability(cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv := server.New(cfg, appLogger)
	router, err := server.SetupRouter(cfg, appLogger)
	if err != nil {
		return err
	}
	srv.SetRouter(router)

	servers := []*http.Server{srv.HTTPServer()}
	if cfg.Observability.PprofAddr != "" {
		servers = append(servers, server.PprofServer(cfg.Observability.PprofAddr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Foresight shell starting",
		zap.String("port", cfg.ServerPort),
		zap.String("environment", cfg.Environment),
		zap.Bool("auth_required", cfg.Auth.Required),
	)
	if err := server.Serve(ctx, appLogger, servers...); err != nil {
		appLogger.Error("Server error", zap.Error(err))
		return err
	}

	appLogger.Info("Graceful shutdown complete")
	return nil
}
