package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetCookie stores token for ttl. The cookie is HTTP only and lax.
func SetCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(ttl.Seconds()), "/", "", secure, true)
}

// ClearCookie expires the identity cookie.
func ClearCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", secure, true)
}
