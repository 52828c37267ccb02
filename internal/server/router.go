package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/foresight-shell/internal/app/domain/preferences"
	"github.com/FACorreiaa/foresight-shell/internal/app/middleware"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/config"
	"github.com/FACorreiaa/foresight-shell/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	store := cookie.NewStore([]byte(cfg.Shell.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	r.Use(middleware.RequestID())
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		Context:    zapContextFunc(),
		SkipPaths:  []string{"/healthz"},
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.OTELGinMiddleware(cfg.Observability.ServiceName))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())
	r.Use(sessions.Sessions(preferences.SessionName, store))

	if err := SetupAssets(r); err != nil {
		return nil, fmt.Errorf("failed to setup assets: %w", err)
	}
	if _, err := routes.Setup(r, cfg, logger); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	return r, nil
}

// zapContextFunc adds the request id and trace ids to access log lines.
// Bodies are never logged; sign-in forms carry passwords.
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

		if user := middleware.GetUserFromContext(c); user != nil {
			fields = append(fields, zap.String("user_id", user.ID), zap.String("role", user.Role.String()))
		}

		return fields
	}
}
