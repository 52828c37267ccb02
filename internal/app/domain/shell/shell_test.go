package shell

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/domain/auth"
	"github.com/FACorreiaa/foresight-shell/internal/app/domain/preferences"
	"github.com/FACorreiaa/foresight-shell/internal/app/handlers"
	"github.com/FACorreiaa/foresight-shell/internal/app/middleware"
	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/cache"
)

type testServer struct {
	engine   *gin.Engine
	handlers *Handlers
	jwt      *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	prefs, err := preferences.NewService([]string{"en", "ar"}, log)
	require.NoError(t, err)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret-key-with-enough-length", TokenExpiration: time.Hour})

	h := NewHandlers(
		handlers.NewBaseHandler(log, models.DefaultBranding, prefs),
		cache.NewCacheManager(time.Minute, log),
		false,
		log,
		navigation.MustShell(navigation.AdminShellConfig()),
		navigation.MustShell(navigation.GameMasterShellConfig()),
	)

	r := gin.New()
	r.Use(sessions.Sessions(preferences.SessionName, cookie.NewStore([]byte("test-session-secret"))))
	r.Use(middleware.Identity(jwtService, log))
	r.GET("/", h.Landing)
	r.GET("/settings", h.Settings)
	r.GET("/admin/scenarios", h.Page(navigation.ShellAdmin, "Scenario Planning"))
	r.GET("/admin/users/*rest", h.Page(navigation.ShellAdmin, "User Management"))
	r.GET("/gm/requests", h.Page(navigation.ShellGameMaster, "Game Requests"))
	r.POST("/shell/:shell/sidebar", h.ToggleSidebar)
	r.POST("/shell/:shell/account", h.SetAccountMenu)
	r.POST("/shell/:shell/account/settings", h.OpenSettings)
	r.POST("/shell/:shell/account/logout", h.Logout)
	r.GET("/api/navigation", h.GetNavigation)
	r.NoRoute(h.NotFound)

	return &testServer{engine: r, handlers: h, jwt: jwtService}
}

func (s *testServer) cookieFor(t *testing.T, role navigation.Role) *http.Cookie {
	t.Helper()
	token, err := s.jwt.GenerateToken(&models.User{ID: "u-" + role.String(), Name: "Test " + role.Label(), Role: role})
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (s *testServer) get(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) post(target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func activeTargets(doc *goquery.Document) []string {
	var out []string
	doc.Find(`nav a[data-active="true"]`).Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.AttrOr("href", ""))
	})
	return out
}

func TestPage(t *testing.T) {
	s := newTestServer(t)

	t.Run("admin identity sees the admin menu", func(t *testing.T) {
		w := s.get("/admin/scenarios", s.cookieFor(t, navigation.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code)
		doc := document(t, w)

		assert.Equal(t, "Scenario Planning - Foresight", doc.Find("title").Text())
		assert.Equal(t, []string{"/admin/scenarios"}, activeTargets(doc))
		assert.Equal(t, 7, doc.Find("nav a").Length())
		assert.Equal(t, "true", doc.Find("#shell-sidebar").AttrOr("data-expanded", ""), "every page load starts expanded")
		assert.Equal(t, "false", doc.Find("#account-menu").AttrOr("data-open", ""))
		assert.Equal(t, "Test Admin (SFD)", doc.Find(`[data-role="user-name"]`).Text())
	})

	t.Run("child paths activate their parent and inherit its title", func(t *testing.T) {
		w := s.get("/admin/users/42", s.cookieFor(t, navigation.RoleAdmin))
		doc := document(t, w)
		assert.Equal(t, []string{"/admin/users"}, activeTargets(doc))
		assert.Equal(t, "User Management - Foresight", doc.Find("title").Text())
	})

	t.Run("anonymous requests fall back to the route role", func(t *testing.T) {
		doc := document(t, s.get("/admin/scenarios"))
		assert.Equal(t, "Admin (SFD)", doc.Find(`[data-role="role-label"]`).Text())
		assert.Equal(t, "User", doc.Find(`[data-role="user-name"]`).Text())
	})

	t.Run("game master shell", func(t *testing.T) {
		doc := document(t, s.get("/gm/requests", s.cookieFor(t, navigation.RoleGameMaster)))
		assert.Equal(t, "gm", doc.Find("#shell").AttrOr("data-shell", ""))
		assert.Equal(t, []string{"/gm/requests"}, activeTargets(doc))
	})

	t.Run("settings page uses the shell of the identity", func(t *testing.T) {
		doc := document(t, s.get("/settings", s.cookieFor(t, navigation.RoleGameMaster)))
		assert.Equal(t, "gm", doc.Find("#shell").AttrOr("data-shell", ""))
		assert.Empty(t, activeTargets(doc))

		doc = document(t, s.get("/settings", s.cookieFor(t, navigation.RoleSuperAdmin)))
		assert.Equal(t, "admin", doc.Find("#shell").AttrOr("data-shell", ""))
		assert.Equal(t, 6, doc.Find("nav a").Length())
	})

	t.Run("unknown paths render not found", func(t *testing.T) {
		w := s.get("/nowhere")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 0, document(t, w).Find("#shell").Length())
	})
}

func TestLanding(t *testing.T) {
	s := newTestServer(t)

	doc := document(t, s.get("/"))
	assert.Equal(t, 1, doc.Find("#signin-form").Length())
	assert.Equal(t, 0, doc.Find("#signin-error").Length())

	doc = document(t, s.get("/?error=invalid"))
	assert.Contains(t, doc.Find("#signin-error").Text(), "Invalid username or password")

	w := s.get("/", s.cookieFor(t, navigation.RoleSuperAdmin))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestToggleSidebar(t *testing.T) {
	s := newTestServer(t)
	admin := s.cookieFor(t, navigation.RoleAdmin)

	w := s.post("/shell/admin/sidebar", url.Values{"sidebar": {"expanded"}, "path": {"/admin/users"}}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	doc := document(t, w)
	aside := doc.Find("#shell-sidebar")
	assert.Equal(t, "false", aside.AttrOr("data-expanded", ""))
	assert.Equal(t, "collapsed", doc.Find("#shell-sidebar-state").AttrOr("value", ""))
	assert.Equal(t, []string{"/admin/users"}, activeTargets(doc), "collapsing keeps the active entry")
	assert.Equal(t, 7, doc.Find("nav a").Length())

	w = s.post("/shell/admin/sidebar", url.Values{"sidebar": {"collapsed"}, "path": {"/admin/users"}}, admin)
	doc = document(t, w)
	assert.Equal(t, "true", doc.Find("#shell-sidebar").AttrOr("data-expanded", ""))
	assert.Equal(t, []string{"/admin/users"}, activeTargets(doc))
}

func TestToggleSidebarReadsLocationFromHeader(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/shell/gm/sidebar", strings.NewReader("sidebar=expanded"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Current-URL", "http://localhost/gm/games")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, []string{"/gm/games"}, activeTargets(document(t, w)))
}

func TestAccountMenu(t *testing.T) {
	s := newTestServer(t)
	admin := s.cookieFor(t, navigation.RoleSuperAdmin)

	doc := document(t, s.post("/shell/admin/account", url.Values{"open": {"true"}, "path": {"/dashboard"}}, admin))
	assert.Equal(t, "true", doc.Find("#account-menu").AttrOr("data-open", ""))
	assert.Equal(t, 1, doc.Find(`[role="menu"]`).Length())

	doc = document(t, s.post("/shell/admin/account", url.Values{"open": {"false"}, "path": {"/dashboard"}}, admin))
	assert.Equal(t, "false", doc.Find("#account-menu").AttrOr("data-open", ""))
	assert.Equal(t, 0, doc.Find(`[role="menu"]`).Length())
}

func TestAccountActions(t *testing.T) {
	s := newTestServer(t)
	admin := s.cookieFor(t, navigation.RoleAdmin)
	open := url.Values{"account": {"open"}, "path": {"/admin/reports"}}

	t.Run("settings closes the menu and navigates", func(t *testing.T) {
		w := s.post("/shell/admin/account/settings", open, admin)
		assert.Equal(t, "/settings", w.Header().Get("HX-Redirect"))
		assert.Equal(t, "false", document(t, w).Find("#account-menu").AttrOr("data-open", ""))
	})

	t.Run("logout closes the menu, clears the identity and navigates", func(t *testing.T) {
		w := s.post("/shell/admin/account/logout", open, admin)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/", w.Header().Get("HX-Redirect"))

		var cleared bool
		for _, c := range w.Result().Cookies() {
			if c.Name == auth.CookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared, "auth cookie should be expired")

		doc := document(t, w)
		assert.Equal(t, "false", doc.Find("#account-menu").AttrOr("data-open", ""))
		assert.Equal(t, 0, doc.Find(`[role="menu"]`).Length())
	})

	t.Run("plain form posts get a redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/shell/gm/account/logout", strings.NewReader(open.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("unknown shell", func(t *testing.T) {
		w := s.post("/shell/nope/account/logout", open, admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Header().Get("HX-Redirect"))
	})
}

func TestGetNavigation(t *testing.T) {
	s := newTestServer(t)

	decode := func(t *testing.T, w *httptest.ResponseRecorder) models.NavigationResponse {
		t.Helper()
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp models.NavigationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}
	active := func(resp models.NavigationResponse) []string {
		var out []string
		for _, item := range resp.Items {
			if item.Active {
				out = append(out, item.Target)
			}
		}
		return out
	}

	t.Run("matches the rendered sidebar", func(t *testing.T) {
		cookie := s.cookieFor(t, navigation.RoleAdmin)
		resp := decode(t, s.get("/api/navigation?shell=admin&path=/admin/users/42", cookie))
		assert.Equal(t, "admin", resp.Role)
		assert.Equal(t, "Admin (SFD)", resp.RoleLabel)
		assert.Len(t, resp.Items, 7)

		html := activeTargets(document(t, s.get("/admin/users/42", cookie)))
		assert.Equal(t, html, active(resp))
	})

	t.Run("identity role wins over the route", func(t *testing.T) {
		resp := decode(t, s.get("/api/navigation?shell=admin&path=/admin/users", s.cookieFor(t, navigation.RoleSuperAdmin)))
		assert.Equal(t, "super_admin", resp.Role)
		assert.Empty(t, active(resp))
	})

	t.Run("game master prefix policy", func(t *testing.T) {
		resp := decode(t, s.get("/api/navigation?shell=gm&path=/gm/requests2"))
		assert.Equal(t, "game_master", resp.Role)
		assert.Equal(t, []string{"/gm/requests"}, active(resp))
	})

	t.Run("defaults", func(t *testing.T) {
		resp := decode(t, s.get("/api/navigation"))
		assert.Equal(t, "admin", resp.Shell)
		assert.Equal(t, "/", resp.CurrentPath)
		assert.Equal(t, "super_admin", resp.Role)
		assert.Empty(t, active(resp))
	})

	t.Run("bad input", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, s.get("/api/navigation?shell=nope").Code)
		assert.Equal(t, http.StatusBadRequest, s.get("/api/navigation?path=admin").Code)
	})

	t.Run("repeated lookups hit the cache", func(t *testing.T) {
		s.handlers.cache.ClearAll()
		before := s.handlers.cache.Menus.GetMetrics().Hits
		decode(t, s.get("/api/navigation?shell=gm&path=/gm/games"))
		decode(t, s.get("/api/navigation?shell=gm&path=/gm/games/3"))
		assert.Equal(t, before+1, s.handlers.cache.Menus.GetMetrics().Hits)
	})

	t.Run("cache size does not grow with locations", func(t *testing.T) {
		s.handlers.cache.ClearAll()
		for i := range 500 {
			resp := decode(t, s.get(fmt.Sprintf("/api/navigation?shell=gm&path=/gm/games/%d", i)))
			require.Equal(t, []string{"/gm/games"}, active(resp))
			decode(t, s.get(fmt.Sprintf("/api/navigation?shell=admin&path=/x%d", i)))
		}
		assert.Equal(t, 2, s.handlers.cache.Menus.Size())
	})
}

func TestNavigationResponse(t *testing.T) {
	view := navigation.MustShell(navigation.AdminShellConfig()).View("/reports", nil, navigation.NewShellState())
	resp := NavigationResponse(view)
	require.Len(t, resp.Items, 6)
	assert.Equal(t, "file-text", resp.Items[4].Icon)
	assert.True(t, resp.Items[4].Active)
	assert.Equal(t, "Super Admin", resp.RoleLabel)
}
