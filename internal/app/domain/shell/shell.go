package shell

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/domain/auth"
	"github.com/FACorreiaa/foresight-shell/internal/app/handlers"
	"github.com/FACorreiaa/foresight-shell/internal/app/htmx"
	"github.com/FACorreiaa/foresight-shell/internal/app/middleware"
	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
	"github.com/FACorreiaa/foresight-shell/internal/app/observability/metrics"
	"github.com/FACorreiaa/foresight-shell/internal/app/pages"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/cache"
)

// Handlers serves the shell pages and the htmx interactions of the sidebar
// and the account menu.
type Handlers struct {
	*handlers.BaseHandler
	shells        map[string]*navigation.Shell
	cache         *cache.CacheManager
	secureCookies bool
	logger        *zap.Logger
}

func NewHandlers(base *handlers.BaseHandler, cacheManager *cache.CacheManager, secureCookies bool, logger *zap.Logger, shells ...*navigation.Shell) *Handlers {
	h := &Handlers{
		BaseHandler:   base,
		shells:        make(map[string]*navigation.Shell, len(shells)),
		cache:         cacheManager,
		secureCookies: secureCookies,
		logger:        logger,
	}
	for _, s := range shells {
		h.shells[s.Name()] = s
	}
	return h
}

// Shell returns a registered shell by name.
func (h *Handlers) Shell(name string) (*navigation.Shell, error) {
	s, ok := h.shells[name]
	if !ok {
		return nil, fmt.Errorf("shell %q: %w", name, models.ErrUnknownShell)
	}
	return s, nil
}

// shellFor picks the shell a signed-in user belongs to, for pages shared by
// both shells.
func (h *Handlers) shellFor(user *models.User) *navigation.Shell {
	if user != nil {
		if gm, ok := h.shells[navigation.ShellGameMaster]; ok && gm.Serves(user.Role) {
			return gm
		}
	}
	return h.shells[navigation.ShellAdmin]
}

// resolve builds the view of a location from the cached role menu.
func (h *Handlers) resolve(c *gin.Context, s *navigation.Shell, path string, state navigation.ShellState) navigation.View {
	identity := middleware.GetUserFromContext(c).Identity()
	role := s.RoleFor(path, identity)
	key := cache.MenuKey(s.Name(), role)

	outcome := "hit"
	menu, found := h.cache.Menus.Get(key)
	if !found {
		outcome = "miss"
		menu = s.Catalog().MenuFor(role)
		h.cache.Menus.Set(key, menu)
	}
	metrics.Get().NavCacheLookupsTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("shell", s.Name()),
		attribute.String("outcome", outcome),
	))

	return s.Compose(role, navigation.Resolve(menu, path, s.Policy()), path, identity, state)
}

func (h *Handlers) recordRender(c *gin.Context, view navigation.View) {
	metrics.Get().ShellRendersTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("shell", view.Shell),
		attribute.String("role", view.RoleName),
	))
}

// Page renders a shell page for the request location. The title comes from
// the active menu entry; child paths inherit their parent's title.
func (h *Handlers) Page(shellName, fallbackTitle string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := h.Shell(shellName)
		if err != nil {
			h.logger.Error("Page handler bound to unknown shell", zap.Error(err))
			c.Status(http.StatusInternalServerError)
			return
		}
		path := c.Request.URL.Path
		view := h.resolve(c, s, path, navigation.NewShellState())

		title := fallbackTitle
		if active, ok := view.Active(); ok {
			title = active.Label
		}
		h.recordRender(c, view)
		h.RenderPage(c, http.StatusOK, title, view, pages.PlaceholderPage(title, path))
	}
}

// Settings renders the settings page inside the shell of the signed-in user.
func (h *Handlers) Settings(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	s := h.shellFor(user)
	view := h.resolve(c, s, c.Request.URL.Path, navigation.NewShellState())
	h.recordRender(c, view)
	h.RenderPage(c, http.StatusOK, "Settings", view, pages.SettingsPage())
}

// Landing is the sign-in page. Signed-in users go straight to their home.
func (h *Handlers) Landing(c *gin.Context) {
	if user := middleware.GetUserFromContext(c); user != nil {
		c.Redirect(http.StatusSeeOther, navigation.Home(user.Role))
		return
	}
	h.RenderBare(c, http.StatusOK, "Sign in", pages.SignInPage(auth.SignInMessage(c.Query("error"))))
}

// NotFound renders unknown locations outside the shell.
func (h *Handlers) NotFound(c *gin.Context) {
	h.RenderBare(c, http.StatusNotFound, "Not found", pages.PlaceholderPage("Page not found", c.Request.URL.Path))
}

// mount restores the shell instance a shell interaction acts on. The state
// and location travel as form values with the request.
func (h *Handlers) mount(c *gin.Context) (*navigation.Shell, *navigation.Mounted, *htmx.Router, bool) {
	s, err := h.Shell(c.Param("shell"))
	if err != nil {
		h.logger.Warn("Shell interaction for unknown shell", zap.Error(err))
		c.String(http.StatusBadRequest, "unknown shell")
		return nil, nil, nil, false
	}
	state := navigation.DecodeShellState(c.PostForm("sidebar"), c.PostForm("account"))
	router := htmx.NewRouter(c, c.PostForm("path"))
	identity := middleware.GetUserFromContext(c).Identity()
	return s, s.Restore(router, identity, state), router, true
}

func (h *Handlers) recordToggle(c *gin.Context, shell, control, value string) {
	metrics.Get().ShellTogglesTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("shell", shell),
		attribute.String("control", control),
		attribute.String("value", value),
	))
}

func (h *Handlers) recordNavigation(c *gin.Context, shell, target string) {
	metrics.Get().ShellNavigationsTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("shell", shell),
		attribute.String("target", target),
	))
}

// ToggleSidebar flips the collapse state and answers the new sidebar.
func (h *Handlers) ToggleSidebar(c *gin.Context) {
	_, mounted, _, ok := h.mount(c)
	if !ok {
		return
	}
	defer mounted.Unmount()

	state := mounted.ToggleSidebar()
	view := mounted.View()
	h.recordToggle(c, view.Shell, "sidebar", state.SidebarValue())
	h.Render(c, http.StatusOK, pages.Sidebar(view, h.Branding))
}

// SetAccountMenu opens or closes the account menu as requested.
func (h *Handlers) SetAccountMenu(c *gin.Context) {
	_, mounted, _, ok := h.mount(c)
	if !ok {
		return
	}
	defer mounted.Unmount()

	state := mounted.ToggleAccountMenu(strings.EqualFold(c.PostForm("open"), "true"))
	view := mounted.View()
	h.recordToggle(c, view.Shell, "account", state.AccountValue())
	h.Render(c, http.StatusOK, pages.AccountMenu(view))
}

// OpenSettings closes the account menu, then navigates to the settings page.
func (h *Handlers) OpenSettings(c *gin.Context) {
	s, mounted, router, ok := h.mount(c)
	if !ok {
		return
	}
	defer mounted.Unmount()

	mounted.Settings()
	h.recordNavigation(c, s.Name(), router.Navigated())
	h.renderClosedMenu(c, mounted)
}

// Logout closes the account menu, drops the identity cookie and navigates to
// the sign-in page.
func (h *Handlers) Logout(c *gin.Context) {
	s, mounted, router, ok := h.mount(c)
	if !ok {
		return
	}
	defer mounted.Unmount()

	auth.ClearCookie(c, h.secureCookies)
	mounted.Logout()
	h.recordNavigation(c, s.Name(), router.Navigated())
	h.renderClosedMenu(c, mounted)
}

// renderClosedMenu answers htmx clients with the closed menu alongside the
// HX-Redirect. Plain clients only get the redirect.
func (h *Handlers) renderClosedMenu(c *gin.Context, mounted *navigation.Mounted) {
	if !htmx.IsRequest(c) {
		return
	}
	h.Render(c, http.StatusOK, pages.AccountMenu(mounted.View()))
}
