package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/htmx"
	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
	"github.com/FACorreiaa/foresight-shell/internal/app/observability/metrics"
	"github.com/FACorreiaa/foresight-shell/internal/app/pages"
	"github.com/FACorreiaa/foresight-shell/internal/app/renderer"
)

const (
	signinFeedbackID = "#signin-feedback"

	// Sign-in failure codes understood by the landing page.
	ErrorCodeMissing = "missing"
	ErrorCodeInvalid = "invalid"
)

// SignInMessage is the banner text for a failure code.
func SignInMessage(code string) string {
	switch code {
	case ErrorCodeMissing:
		return "Username and password are required"
	case ErrorCodeInvalid:
		return "Invalid username or password"
	default:
		return ""
	}
}

type Handler struct {
	directory     *Directory
	jwtService    *JWTService
	secureCookies bool
	logger        *zap.Logger
}

func NewHandler(directory *Directory, jwtService *JWTService, secureCookies bool, logger *zap.Logger) *Handler {
	return &Handler{
		directory:     directory,
		jwtService:    jwtService,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// SignIn checks the form credentials, stores the identity cookie and sends
// the user to the first entry of their menu.
func (h *Handler) SignIn(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.logger.Warn("Missing username or password")
		h.record(c, "signin", "rejected")
		h.fail(c, ErrorCodeMissing)
		return
	}

	user, err := h.directory.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, models.ErrUnauthenticated) {
			h.logger.Error("Authentication failed", zap.Error(err))
		}
		h.logger.Warn("Invalid login credentials", zap.String("username", username))
		h.record(c, "signin", "rejected")
		h.fail(c, ErrorCodeInvalid)
		return
	}

	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		h.logger.Error("Failed to generate token", zap.Error(err))
		h.record(c, "signin", "error")
		c.Status(http.StatusInternalServerError)
		return
	}
	SetCookie(c, token, h.jwtService.TokenExpiration(), h.secureCookies)

	h.logger.Info("Successful login",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role.String()),
	)
	h.record(c, "signin", "ok")
	htmx.Redirect(c, navigation.Home(user.Role))
}

// SignOut clears the identity cookie and returns to the sign-in page.
func (h *Handler) SignOut(c *gin.Context) {
	ClearCookie(c, h.secureCookies)
	h.record(c, "signout", "ok")
	htmx.Redirect(c, navigation.LogoutPath)
}

// fail swaps an error banner into the form for htmx clients and sends
// everyone else back to the landing page with the failure code.
func (h *Handler) fail(c *gin.Context, code string) {
	if !htmx.IsRequest(c) {
		c.Redirect(http.StatusSeeOther, navigation.LogoutPath+"?error="+url.QueryEscape(code))
		return
	}
	c.Header(htmx.HeaderRetarget, signinFeedbackID)
	c.Header(htmx.HeaderReswap, "innerHTML")
	c.Render(http.StatusOK, renderer.New(c.Request.Context(), http.StatusOK, pages.ErrorBanner("signin-error", SignInMessage(code))))
}

func (h *Handler) record(c *gin.Context, endpoint, outcome string) {
	metrics.Get().AuthRequestsTotal.Add(c.Request.Context(), 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("outcome", outcome),
	))
}
