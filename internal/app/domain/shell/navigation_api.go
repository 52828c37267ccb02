package shell

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

// GetNavigation returns the resolved menu of a shell for a location. The
// shell query parameter defaults to the administrative shell and path to the
// caller's location.
func (h *Handlers) GetNavigation(c *gin.Context) {
	s, err := h.Shell(c.DefaultQuery("shell", navigation.ShellAdmin))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path := c.DefaultQuery("path", "/")
	if !strings.HasPrefix(path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path must start with /"})
		return
	}

	view := h.resolve(c, s, path, navigation.NewShellState())
	h.logger.Debug("Navigation resolved",
		zap.String("shell", view.Shell),
		zap.String("role", view.RoleName),
		zap.String("path", path),
	)
	c.JSON(http.StatusOK, NavigationResponse(view))
}

// NavigationResponse flattens a view into the API shape.
func NavigationResponse(view navigation.View) models.NavigationResponse {
	items := make([]models.PageLink, 0, len(view.Entries))
	for _, e := range view.Entries {
		items = append(items, models.PageLink{
			Icon:   string(e.Icon),
			Label:  e.Label,
			Target: e.Target,
			Active: e.Active,
		})
	}
	return models.NavigationResponse{
		Shell:       view.Shell,
		Role:        view.RoleName,
		RoleLabel:   view.RoleLabel,
		CurrentPath: view.CurrentPath,
		Items:       items,
	}
}
