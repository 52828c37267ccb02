// Package htmx adapts gin requests to the HTMX request/response headers and
// exposes a request as the navigation router of the shell.
package htmx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	HeaderRequest    = "HX-Request"
	HeaderCurrentURL = "HX-Current-URL"
	HeaderRedirect   = "HX-Redirect"
	HeaderRetarget   = "HX-Retarget"
	HeaderReswap     = "HX-Reswap"
	HeaderRefresh    = "HX-Refresh"
	HeaderTrigger    = "HX-Trigger"
)

// IsRequest reports whether the request was issued by htmx.
func IsRequest(c *gin.Context) bool {
	return c.GetHeader(HeaderRequest) == "true"
}

// Redirect sends the browser to location. Full page loads get a 303, htmx
// requests an HX-Redirect so the client performs the navigation.
func Redirect(c *gin.Context, location string) {
	if IsRequest(c) {
		c.Header(HeaderRedirect, location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// Refresh asks htmx for a full page reload; other clients are redirected to
// fallback.
func Refresh(c *gin.Context, fallback string) {
	if IsRequest(c) {
		c.Header(HeaderRefresh, "true")
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, fallback)
}

// CurrentPath is the browser location of the request. For htmx requests this
// is the page that issued the request, not the endpoint being called.
func CurrentPath(c *gin.Context) string {
	if IsRequest(c) {
		if raw := c.GetHeader(HeaderCurrentURL); raw != "" {
			if u, err := url.Parse(raw); err == nil && u.Path != "" {
				return u.Path
			}
		}
	}
	return c.Request.URL.Path
}

// Router exposes one request as a navigation.Router. Navigate records the
// target and answers with a redirect; at most one navigation is sent per
// request.
type Router struct {
	c         *gin.Context
	path      string
	navigated string
}

// NewRouter reads the location from the request. An explicit override, such
// as a path form value, takes precedence when it is a site-relative path.
func NewRouter(c *gin.Context, override string) *Router {
	path := CurrentPath(c)
	if strings.HasPrefix(override, "/") && !strings.HasPrefix(override, "//") {
		path = override
	}
	return &Router{c: c, path: path}
}

func (r *Router) CurrentPath() string {
	return r.path
}

func (r *Router) Navigate(path string) {
	if r.navigated != "" {
		return
	}
	r.navigated = path
	Redirect(r.c, path)
}

// Navigated returns the target of the navigation issued, if any.
func (r *Router) Navigated() string {
	return r.navigated
}
