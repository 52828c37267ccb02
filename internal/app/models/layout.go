package models

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

type User struct {
	ID       string
	Name     string
	Email    string
	Role     navigation.Role
	IsActive bool
}

// Identity is the view of the user the navigation shell consumes.
func (u *User) Identity() *navigation.Identity {
	if u == nil {
		return nil
	}
	return &navigation.Identity{ID: u.ID, Name: u.Name, Role: u.Role}
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preferences are owned by the language switch and theme toggle. The shell
// renders them as-is.
type Preferences struct {
	Language  string
	Direction string
	Theme     string
	Languages []string
}

type Branding struct {
	Organization        string
	OrganizationNative  string
	Product             string
	ProductTagline      string
	Copyright           string
	// GameMasterCopyright replaces Copyright in the Game Master footer.
	GameMasterCopyright string
	Version             string
}

var DefaultBranding = Branding{
	Organization:        "DUBAI POLICE",
	OrganizationNative:  "شرطة دبي",
	Product:             "FUTURE",
	ProductTagline:      "FORESIGHT",
	Copyright:           "COPY RIGHTS 2025, DUBAI POLICE DEPARTMENT",
	GameMasterCopyright: "Copyright 2025, Dubai Police",
	Version:             "2.5.0",
}

type LayoutTempl struct {
	Title       string
	User        *User
	View        navigation.View
	Preferences Preferences
	Branding    Branding
	Content     templ.Component
}

// PageLink is an entry of the navigation JSON API.
type PageLink struct {
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Target string `json:"target"`
	Active bool   `json:"active"`
}

type NavigationResponse struct {
	Shell       string     `json:"shell"`
	Role        string     `json:"role"`
	RoleLabel   string     `json:"role_label"`
	CurrentPath string     `json:"current_path"`
	Items       []PageLink `json:"items"`
}
