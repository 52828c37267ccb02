package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "foresight-shell"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	ShellRendersTotal      metric.Int64Counter
	ShellTogglesTotal      metric.Int64Counter
	ShellNavigationsTotal  metric.Int64Counter
	AuthRequestsTotal      metric.Int64Counter
	NavCacheLookupsTotal   metric.Int64Counter
	TemplateRenderDuration metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
// Call it after the provider is installed; earlier calls bind to the no-op
// provider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.ShellRendersTotal, err = meter.Int64Counter(
			"shell_renders_total",
			metric.WithDescription("Navigation shell renders by shell and role"),
			metric.WithUnit("{render}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create shell_renders_total: %v", err)
		}

		m.ShellTogglesTotal, err = meter.Int64Counter(
			"shell_toggles_total",
			metric.WithDescription("Sidebar and account menu state transitions"),
			metric.WithUnit("{toggle}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create shell_toggles_total: %v", err)
		}

		m.ShellNavigationsTotal, err = meter.Int64Counter(
			"shell_navigations_total",
			metric.WithDescription("Navigation commands issued from the shell"),
			metric.WithUnit("{navigation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create shell_navigations_total: %v", err)
		}

		m.AuthRequestsTotal, err = meter.Int64Counter(
			"auth_requests_total",
			metric.WithDescription("Total number of sign-in and sign-out requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_requests_total: %v", err)
		}

		m.NavCacheLookupsTotal, err = meter.Int64Counter(
			"nav_cache_lookups_total",
			metric.WithDescription("Menu resolution cache lookups by outcome"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create nav_cache_lookups_total: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of template rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, initializing them against the current global
// provider on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
