package navigation

import "strings"

// Role is the persona that decides which menu a shell shows.
type Role int

const (
	RoleSuperAdmin Role = iota
	RoleAdmin
	RoleGameMaster
)

var roleNames = map[Role]string{
	RoleSuperAdmin: "super_admin",
	RoleAdmin:      "admin",
	RoleGameMaster: "game_master",
}

var roleLabels = map[Role]string{
	RoleSuperAdmin: "Super Admin",
	RoleAdmin:      "Admin (SFD)",
	RoleGameMaster: "Game Master",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Label is the display string shown under the user name in the header.
func (r Role) Label() string {
	return roleLabels[r]
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole accepts the wire name of a role, case and surrounding space
// insensitive.
func ParseRole(value string) (Role, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	for role, name := range roleNames {
		if name == cleaned {
			return role, true
		}
	}
	return RoleSuperAdmin, false
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleGameMaster}
}

const adminPrefix = "/admin"

// Classify maps a route to the role context of the administrative shell.
// Any path under /admin is Admin, everything else is SuperAdmin.
func Classify(path string) Role {
	if strings.HasPrefix(path, adminPrefix) {
		return RoleAdmin
	}
	return RoleSuperAdmin
}
