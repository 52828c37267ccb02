package handlers

import (
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/domain/preferences"
	"github.com/FACorreiaa/foresight-shell/internal/app/middleware"
	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
	"github.com/FACorreiaa/foresight-shell/internal/app/observability/metrics"
	"github.com/FACorreiaa/foresight-shell/internal/app/pages"
	"github.com/FACorreiaa/foresight-shell/internal/app/renderer"
)

const titleSuffix = " - Foresight"

type BaseHandler struct {
	Logger      *zap.Logger
	Branding    models.Branding
	Preferences *preferences.Service
}

func NewBaseHandler(logger *zap.Logger, branding models.Branding, prefs *preferences.Service) *BaseHandler {
	return &BaseHandler{Logger: logger, Branding: branding, Preferences: prefs}
}

// Title decorates a page title.
func Title(title string) string {
	return title + titleSuffix
}

func (h *BaseHandler) NewLayoutData(c *gin.Context, title string, view navigation.View, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:       Title(title),
		User:        middleware.GetUserFromContext(c),
		View:        view,
		Preferences: h.Preferences.FromContext(c),
		Branding:    h.Branding,
		Content:     content,
	}
}

// Render writes component and records how long rendering took.
func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	start := time.Now()
	c.Render(status, renderer.New(c.Request.Context(), status, component))
	metrics.Get().TemplateRenderDuration.Record(c.Request.Context(), time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("route", c.FullPath())))
}

// RenderPage always renders the full shell. Boosted links swap the whole
// body, so the shell state starts fresh on every navigation.
func (h *BaseHandler) RenderPage(c *gin.Context, status int, title string, view navigation.View, content templ.Component) {
	h.Render(c, status, pages.LayoutPage(h.NewLayoutData(c, title, view, content)))
}

// RenderBare renders a page without the shell.
func (h *BaseHandler) RenderBare(c *gin.Context, status int, title string, content templ.Component) {
	h.Render(c, status, pages.BarePage(Title(title), h.Preferences.FromContext(c), content))
}
