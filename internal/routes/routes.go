package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/domain/auth"
	"github.com/FACorreiaa/foresight-shell/internal/app/domain/preferences"
	"github.com/FACorreiaa/foresight-shell/internal/app/domain/shell"
	"github.com/FACorreiaa/foresight-shell/internal/app/handlers"
	"github.com/FACorreiaa/foresight-shell/internal/app/middleware"
	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
	"github.com/FACorreiaa/foresight-shell/internal/app/renderer"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/cache"
	"github.com/FACorreiaa/foresight-shell/internal/pkg/config"
)

type AppHandlers struct {
	Shell       *shell.Handlers
	Auth        *auth.Handler
	Preferences *preferences.Handler
	JWT         *auth.JWTService
	Directory   *auth.Directory
	Cache       *cache.CacheManager
}

// Setup installs the templ renderer, wires the handlers and registers every
// route on r.
func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: r.HTMLRender}

	h, err := setupDependencies(cfg, log)
	if err != nil {
		return nil, err
	}
	setupRouter(r, h, cfg, log)
	return h, nil
}

func setupDependencies(cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	adminShell, err := navigation.NewShell(navigation.AdminShellConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build admin shell: %w", err)
	}
	gmShell, err := navigation.NewShell(navigation.GameMasterShellConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build game master shell: %w", err)
	}

	prefsService, err := preferences.NewService(cfg.Shell.SupportedLanguages, log)
	if err != nil {
		return nil, err
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.Auth.JWTSecret,
		TokenExpiration: cfg.Auth.TokenTTL,
		Logger:          log,
	})
	directory := auth.NewDirectory(log)
	if err := auth.SeedDemoAccounts(directory, cfg.Auth.DemoPassword); err != nil {
		return nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	branding := models.DefaultBranding
	branding.Version = cfg.Shell.Version

	cacheManager := cache.NewCacheManager(cfg.Shell.NavCacheTTL, log)
	base := handlers.NewBaseHandler(log, branding, prefsService)
	secure := cfg.IsProduction()

	return &AppHandlers{
		Shell:       shell.NewHandlers(base, cacheManager, secure, log, adminShell, gmShell),
		Auth:        auth.NewHandler(directory, jwtService, secure, log),
		Preferences: preferences.NewHandler(prefsService, log),
		JWT:         jwtService,
		Directory:   directory,
		Cache:       cacheManager,
	}, nil
}

// shellPages registers every menu target of a shell, plus its children. Each
// target admits only the roles whose menu lists it, so a rendered page never
// shows a menu that belongs to another role.
func shellPages(r gin.IRoutes, h *shell.Handlers, shellName string, required bool) {
	s, err := h.Shell(shellName)
	if err != nil {
		return
	}
	var targets []string
	roles := make(map[string][]navigation.Role)
	labels := make(map[string]string)
	for _, role := range s.Catalog().Roles() {
		for _, entry := range s.Catalog().MenuFor(role) {
			if _, seen := roles[entry.Target]; !seen {
				targets = append(targets, entry.Target)
				labels[entry.Target] = entry.Label
			}
			roles[entry.Target] = append(roles[entry.Target], role)
		}
	}
	for _, target := range targets {
		guard := middleware.RequireRoles(required, roles[target]...)
		page := h.Page(shellName, labels[target])
		r.GET(target, guard, page)
		r.GET(target+"/*rest", guard, page)
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers, cfg *config.Config, log *zap.Logger) {
	r.Use(middleware.Identity(h.JWT, log))

	required := cfg.Auth.Required
	anyRole := middleware.RequireRoles(required, navigation.Roles()...)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.Shell.Version})
	})

	r.GET("/", h.Shell.Landing)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signin", h.Auth.SignIn)
		authGroup.POST("/signout", h.Auth.SignOut)
	}

	prefs := r.Group("/preferences")
	{
		prefs.POST("/language", h.Preferences.SetLanguage)
		prefs.POST("/theme", h.Preferences.ToggleTheme)
	}

	shellGroup := r.Group("/shell/:shell", anyRole)
	{
		shellGroup.POST("/sidebar", h.Shell.ToggleSidebar)
		shellGroup.POST("/account", h.Shell.SetAccountMenu)
		shellGroup.POST("/account/settings", h.Shell.OpenSettings)
		shellGroup.POST("/account/logout", h.Shell.Logout)
	}

	r.GET("/api/navigation", anyRole, h.Shell.GetNavigation)
	r.GET(navigation.SettingsPath, anyRole, h.Shell.Settings)

	shellPages(r, h.Shell, navigation.ShellAdmin, required)
	shellPages(r, h.Shell, navigation.ShellGameMaster, required)

	r.NoRoute(h.Shell.NotFound)
}
