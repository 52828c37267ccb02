package preferences

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/htmx"
	"github.com/FACorreiaa/foresight-shell/internal/app/pages"
	"github.com/FACorreiaa/foresight-shell/internal/app/renderer"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// SetLanguage stores the chosen language. Direction and copy change with it,
// so htmx clients reload the page.
func (h *Handler) SetLanguage(c *gin.Context) {
	lang, err := h.service.setLanguage(c, c.PostForm("lang"))
	if err != nil {
		h.logger.Error("Failed to store language", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	h.logger.Debug("Language changed", zap.String("lang", lang))
	htmx.Refresh(c, refererPath(c))
}

// ToggleTheme flips the theme and answers the new toggle button. The
// theme-changed event lets the page update its root element.
func (h *Handler) ToggleTheme(c *gin.Context) {
	theme, err := h.service.toggleTheme(c)
	if err != nil {
		h.logger.Error("Failed to store theme", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	if !htmx.IsRequest(c) {
		c.Redirect(http.StatusSeeOther, refererPath(c))
		return
	}

	trigger, _ := json.Marshal(map[string]map[string]string{"theme-changed": {"theme": theme}})
	c.Header(htmx.HeaderTrigger, string(trigger))
	prefs := h.service.FromContext(c)
	prefs.Theme = theme
	c.Render(http.StatusOK, renderer.New(c.Request.Context(), http.StatusOK, pages.ThemeToggle(prefs)))
}

func refererPath(c *gin.Context) string {
	if u, err := url.Parse(c.GetHeader("Referer")); err == nil && len(u.Path) > 0 && u.Path[0] == '/' {
		return u.Path
	}
	return "/"
}
