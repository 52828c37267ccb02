package cache

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

// CacheManager holds all application caches
type CacheManager struct {
	// Role menus keyed by shell and role. Locations are resolved per request
	// so the key space stays bounded by the catalogues.
	Menus *UnifiedCache[[]navigation.MenuEntry]
}

func NewCacheManager(ttl time.Duration, logger *zap.Logger) *CacheManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheManager{
		Menus: NewUnifiedCache[[]navigation.MenuEntry](ttl, "menus", logger),
	}
}

// MenuKey builds the cache key of a role menu.
func MenuKey(shell string, role navigation.Role) string {
	var b strings.Builder
	b.Grow(len(shell) + 16)
	b.WriteString(shell)
	b.WriteByte('|')
	b.WriteString(role.String())
	return b.String()
}

func (cm *CacheManager) GetAllMetrics() map[string]CacheMetrics {
	return map[string]CacheMetrics{
		cm.Menus.Name(): cm.Menus.GetMetrics(),
	}
}

func (cm *CacheManager) ClearAll() {
	cm.Menus.Clear()
}
