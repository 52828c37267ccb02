package routes

import (
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
	"github.com/FACorreiaa/foresight-shell/internal/pkg/config"
)

func testConfig(required bool) *config.Config {
	return &config.Config{
		Environment: "test",
		Auth: config.AuthConfig{
			Required:     required,
			JWTSecret:    "test-secret-key-with-enough-length",
			TokenTTL:     time.Hour,
			DemoPassword: "foresight",
		},
		Shell: config.ShellConfig{
			Version:            "9.9.9",
			SupportedLanguages: []string{"en", "ar"},
			SessionSecret:      "test-session-secret",
			NavCacheTTL:        time.Minute,
		},
	}
}

func newEngine(t *testing.T, required bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(preferences.SessionName, cookie.NewStore([]byte("test-session-secret"))))
	_, err := Setup(r, testConfig(required), zap.NewNop())
	require.NoError(t, err)
	return r
}

func signIn(t *testing.T, r http.Handler, username string) *http.Cookie {
	t.Helper()
	form := url.Values{"username": {username}, "password": {"foresight"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatalf("no auth cookie for %s", username)
	return nil
}

func get(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEveryMenuTargetIsRouted(t *testing.T) {
	r := newEngine(t, true)
	superAdmin := signIn(t, r, "superadmin")
	admin := signIn(t, r, "admin")
	gm := signIn(t, r, "gamemaster")

	for _, target := range []string{"/dashboard", "/users", "/scenarios", "/retreats", "/reports", "/configuration"} {
		assert.Equal(t, http.StatusOK, get(r, target, superAdmin).Code, target)
	}
	for _, target := range []string{"/admin/dashboard", "/admin/users", "/admin/game-requests", "/admin/scenarios", "/admin/retreats", "/admin/reports", "/admin/configuration", "/admin/users/7"} {
		assert.Equal(t, http.StatusOK, get(r, target, admin).Code, target)
	}
	for _, target := range []string{"/gm/dashboard", "/gm/requests", "/gm/games", "/gm/reports", "/gm/games/3"} {
		assert.Equal(t, http.StatusOK, get(r, target, gm).Code, target)
	}
	assert.Equal(t, http.StatusOK, get(r, "/settings", gm).Code)
}

func TestGuards(t *testing.T) {
	r := newEngine(t, true)
	gm := signIn(t, r, "gamemaster")
	admin := signIn(t, r, "admin")

	superAdmin := signIn(t, r, "superadmin")

	assert.Equal(t, http.StatusForbidden, get(r, "/admin/users", gm).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/gm/games", admin).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "/gm/games", superAdmin).Code)

	w := get(r, "/admin/users")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, get(r, "/").Code)
}

func TestAdminShellRolesKeepToTheirMenus(t *testing.T) {
	r := newEngine(t, true)
	superAdmin := signIn(t, r, "superadmin")
	admin := signIn(t, r, "admin")

	for _, target := range []string{"/configuration", "/users", "/users/7", "/dashboard"} {
		assert.Equal(t, http.StatusForbidden, get(r, target, admin).Code, target)
	}
	for _, target := range []string{"/admin/scenarios", "/admin/users/7", "/admin/dashboard"} {
		assert.Equal(t, http.StatusForbidden, get(r, target, superAdmin).Code, target)
	}

	active := func(w *httptest.ResponseRecorder) []string {
		require.Equal(t, http.StatusOK, w.Code)
		doc, err := goquery.NewDocumentFromReader(w.Body)
		require.NoError(t, err)
		var out []string
		doc.Find(`#shell-sidebar a[data-active="true"]`).Each(func(_ int, s *goquery.Selection) {
			out = append(out, s.AttrOr("href", ""))
		})
		return out
	}
	assert.Equal(t, []string{"/admin/scenarios"}, active(get(r, "/admin/scenarios", admin)))
	assert.Equal(t, []string{"/configuration"}, active(get(r, "/configuration", superAdmin)))
}

func TestGuardsWithoutRequiredAuth(t *testing.T) {
	r := newEngine(t, false)
	assert.Equal(t, http.StatusOK, get(r, "/admin/users").Code)
	assert.Equal(t, http.StatusOK, get(r, "/api/navigation?shell=gm&path=/gm/games").Code)
}

func TestHealthz(t *testing.T) {
	r := newEngine(t, true)
	w := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"9.9.9"`)
}
