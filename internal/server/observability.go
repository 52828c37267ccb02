package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/observability/metrics"
	"github.com/FACorreiaa/foresight-shell/internal/app/observability/tracer"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/config"
)

// ObservabilityShutdownFunc is the function type returned by InitObservability
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability initializes OpenTelemetry and application metrics
func InitObservability(cfg *config.Config, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	otelShutdown, err := tracer.InitOtelProviders(tracer.Options{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Shell.Version,
		MetricsAddr:    cfg.Observability.MetricsAddr,
		OTLPEndpoint:   cfg.Observability.OTELEndpoint,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized", zap.String("metrics_endpoint", cfg.Observability.MetricsAddr+"/metrics"))

	return otelShutdown, nil
}
