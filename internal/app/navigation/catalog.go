package navigation

import (
	"fmt"
	"strings"
)

// Icon names a lucide icon; the renderer maps it to markup.
type Icon string

const (
	IconDashboard     Icon = "layout-dashboard"
	IconUsers         Icon = "users"
	IconTarget        Icon = "target"
	IconCalendar      Icon = "calendar"
	IconFileText      Icon = "file-text"
	IconList          Icon = "list"
	IconGamepad       Icon = "gamepad-2"
	IconUserRoundCog  Icon = "user-round-cog"
	IconSettings      Icon = "settings"
	IconLogOut        Icon = "log-out"
	IconMenu          Icon = "menu"
	IconInfo          Icon = "info"
	IconMoon          Icon = "moon"
	IconSun           Icon = "sun"
	IconShieldCheck   Icon = "shield-check"
	IconCopyright     Icon = "copyright"
	IconLanguages     Icon = "languages"
	IconChevronsLeft  Icon = "chevrons-left"
	IconChevronsRight Icon = "chevrons-right"
)

// MenuEntry is one sidebar link.
type MenuEntry struct {
	Icon   Icon   `json:"icon"`
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Catalog maps a role to its ordered menu. Order is the top-to-bottom order
// of the sidebar.
type Catalog map[Role][]MenuEntry

// MenuFor returns a copy of the menu for role. Unknown roles get an empty
// menu.
func (c Catalog) MenuFor(role Role) []MenuEntry {
	entries := c[role]
	out := make([]MenuEntry, len(entries))
	copy(out, entries)
	return out
}

// Roles returns the roles present in the catalog in declaration order.
func (c Catalog) Roles() []Role {
	roles := make([]Role, 0, len(c))
	for _, role := range Roles() {
		if _, ok := c[role]; ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// Validate checks that every menu is non-empty, every target starts with a
// slash and no target repeats within one role.
func (c Catalog) Validate() error {
	for _, role := range c.Roles() {
		entries := c[role]
		if len(entries) == 0 {
			return fmt.Errorf("catalog: role %s has no entries", role)
		}
		seen := make(map[string]struct{}, len(entries))
		for _, entry := range entries {
			if !strings.HasPrefix(entry.Target, "/") {
				return fmt.Errorf("catalog: role %s: target %q must start with /", role, entry.Target)
			}
			if strings.TrimSpace(entry.Label) == "" {
				return fmt.Errorf("catalog: role %s: target %q has no label", role, entry.Target)
			}
			if _, dup := seen[entry.Target]; dup {
				return fmt.Errorf("catalog: role %s: duplicate target %q", role, entry.Target)
			}
			seen[entry.Target] = struct{}{}
		}
	}
	return nil
}

var (
	superAdminMenu = []MenuEntry{
		{Icon: IconDashboard, Label: "Dashboard", Target: "/dashboard"},
		{Icon: IconUsers, Label: "User Management", Target: "/users"},
		{Icon: IconTarget, Label: "Scenario Planning", Target: "/scenarios"},
		{Icon: IconCalendar, Label: "Future Retreat", Target: "/retreats"},
		{Icon: IconFileText, Label: "Reports Library", Target: "/reports"},
		{Icon: IconUserRoundCog, Label: "Roles Configuration", Target: "/configuration"},
	}

	adminMenu = []MenuEntry{
		{Icon: IconDashboard, Label: "Dashboard", Target: "/admin/dashboard"},
		{Icon: IconUsers, Label: "User Management", Target: "/admin/users"},
		{Icon: IconGamepad, Label: "Game Requests", Target: "/admin/game-requests"},
		{Icon: IconTarget, Label: "Scenario Planning", Target: "/admin/scenarios"},
		{Icon: IconCalendar, Label: "Future Retreat", Target: "/admin/retreats"},
		{Icon: IconList, Label: "Reports", Target: "/admin/reports"},
		{Icon: IconUserRoundCog, Label: "Roles Configuration", Target: "/admin/configuration"},
	}

	gameMasterMenu = []MenuEntry{
		{Icon: IconDashboard, Label: "Dashboard", Target: "/gm/dashboard"},
		{Icon: IconGamepad, Label: "Game Requests", Target: "/gm/requests"},
		{Icon: IconTarget, Label: "Games", Target: "/gm/games"},
		{Icon: IconFileText, Label: "Reports / Recap", Target: "/gm/reports"},
	}
)

// AdminCatalog serves the administrative shell.
var AdminCatalog = Catalog{
	RoleSuperAdmin: superAdminMenu,
	RoleAdmin:      adminMenu,
}

// GameMasterCatalog serves the Game Master shell.
var GameMasterCatalog = Catalog{
	RoleGameMaster: gameMasterMenu,
}
