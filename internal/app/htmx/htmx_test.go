package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(method, target string, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c, w
}

func TestCurrentPath(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/admin/users", nil)
	assert.Equal(t, "/admin/users", CurrentPath(c))

	c, _ = newContext(http.MethodPost, "/shell/admin/sidebar", map[string]string{
		HeaderRequest:    "true",
		HeaderCurrentURL: "http://localhost:8091/admin/reports?tab=2",
	})
	assert.Equal(t, "/admin/reports", CurrentPath(c))

	c, _ = newContext(http.MethodPost, "/shell/admin/sidebar", map[string]string{HeaderRequest: "true"})
	assert.Equal(t, "/shell/admin/sidebar", CurrentPath(c))
}

func TestRedirect(t *testing.T) {
	c, w := newContext(http.MethodPost, "/shell/admin/account/logout", map[string]string{HeaderRequest: "true"})
	Redirect(c, "/")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/", w.Header().Get(HeaderRedirect))

	c, w = newContext(http.MethodPost, "/auth/signin", nil)
	Redirect(c, "/dashboard")
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRouter(t *testing.T) {
	c, w := newContext(http.MethodPost, "/shell/gm/account/settings", map[string]string{HeaderRequest: "true"})
	r := NewRouter(c, "/gm/games")
	assert.Equal(t, "/gm/games", r.CurrentPath())

	r.Navigate("/settings")
	r.Navigate("/ignored")
	assert.Equal(t, "/settings", r.Navigated())
	assert.Equal(t, "/settings", w.Header().Get(HeaderRedirect))

	c, _ = newContext(http.MethodGet, "/dashboard", nil)
	assert.Equal(t, "/dashboard", NewRouter(c, "//evil.example").CurrentPath())
	assert.Equal(t, "/dashboard", NewRouter(c, "").CurrentPath())
}
