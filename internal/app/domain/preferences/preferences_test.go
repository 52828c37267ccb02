package preferences

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service, err := NewService([]string{"en", "ar"}, zap.NewNop())
	require.NoError(t, err)
	handler := NewHandler(service, zap.NewNop())

	r := gin.New()
	r.Use(sessions.Sessions(SessionName, cookie.NewStore([]byte("test-session-secret"))))
	r.POST("/preferences/language", handler.SetLanguage)
	r.POST("/preferences/theme", handler.ToggleTheme)
	r.GET("/prefs", func(c *gin.Context) {
		c.JSON(http.StatusOK, service.FromContext(c))
	})
	return r, service
}

func postForm(r http.Handler, target string, form url.Values, cookies []*http.Cookie, htmxRequest bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmxRequest {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMatch(t *testing.T) {
	service, err := NewService([]string{"en", "ar"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "ar", service.Match("ar"))
	assert.Equal(t, "ar", service.Match("ar-AE"))
	assert.Equal(t, "en", service.Match("fr"))
	assert.Equal(t, "en", service.Match(""))
	assert.Equal(t, "ar", service.Match("fr-FR,ar;q=0.8,en;q=0.5"))
}

func TestNewServiceRejectsInvalidTags(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
	_, err = NewService([]string{"en", "not a tag"}, nil)
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Direction("ar"))
	assert.Equal(t, "rtl", Direction("ar-AE"))
	assert.Equal(t, "ltr", Direction("en"))
	assert.Equal(t, "ltr", Direction("???"))
}

func TestFromContextDefaults(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/prefs", nil)
	req.Header.Set("Accept-Language", "ar-AE,ar;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"Language":"ar"`)
	assert.Contains(t, w.Body.String(), `"Direction":"rtl"`)
	assert.Contains(t, w.Body.String(), `"Theme":"dark"`)
}

func TestSetLanguage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/preferences/language", url.Values{"lang": {"ar"}}, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))

	req := httptest.NewRequest(http.MethodGet, "/prefs", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"Language":"ar"`)

	w = postForm(r, "/preferences/language", url.Values{"lang": {"en"}}, nil, false)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestToggleTheme(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/preferences/theme", nil, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("HX-Trigger"), `"theme":"light"`)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, doc.Find("#theme-toggle").AttrOr("data-theme", ""))
	assert.Equal(t, 1, doc.Find(`#theme-toggle i[data-lucide="sun"]`).Length())

	w = postForm(r, "/preferences/theme", nil, w.Result().Cookies(), true)
	assert.Contains(t, w.Header().Get("HX-Trigger"), `"theme":"dark"`)
}
