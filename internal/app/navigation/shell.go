package navigation

import (
	"fmt"
	"sync"
)

const (
	ShellAdmin      = "admin"
	ShellGameMaster = "gm"

	SettingsPath = "/settings"
	LogoutPath   = "/"

	defaultUserName = "User"
)

// Identity is the signed-in user as far as the shell cares.
type Identity struct {
	ID   string
	Name string
	Role Role
}

// RoleSource picks the role context of a view.
type RoleSource func(currentPath string, identity *Identity) Role

// FixedRole always answers role.
func FixedRole(role Role) RoleSource {
	return func(string, *Identity) Role { return role }
}

// IdentityOrRoute prefers the identity's role when the catalog serves it and
// falls back to Classify otherwise.
func IdentityOrRoute(catalog Catalog) RoleSource {
	return func(currentPath string, identity *Identity) Role {
		if identity != nil {
			if _, ok := catalog[identity.Role]; ok {
				return identity.Role
			}
		}
		return Classify(currentPath)
	}
}

// ShellConfig parametrizes a NavigationShell.
type ShellConfig struct {
	Name         string
	Catalog      Catalog
	Policy       MatchPolicy
	RoleSource   RoleSource
	SettingsPath string
	LogoutPath   string
}

// AdminShellConfig is the shell for the Super Admin and Admin roles.
func AdminShellConfig() ShellConfig {
	return ShellConfig{
		Name:         ShellAdmin,
		Catalog:      AdminCatalog,
		Policy:       MatchExactOrChild,
		RoleSource:   IdentityOrRoute(AdminCatalog),
		SettingsPath: SettingsPath,
		LogoutPath:   LogoutPath,
	}
}

// GameMasterShellConfig is the shell hosted under /gm.
func GameMasterShellConfig() ShellConfig {
	return ShellConfig{
		Name:         ShellGameMaster,
		Catalog:      GameMasterCatalog,
		Policy:       MatchPrefix,
		RoleSource:   FixedRole(RoleGameMaster),
		SettingsPath: SettingsPath,
		LogoutPath:   LogoutPath,
	}
}

// Shell resolves menus and active entries for one shell variant. It holds
// no per-user state and is safe for concurrent use.
type Shell struct {
	cfg ShellConfig
}

func NewShell(cfg ShellConfig) (*Shell, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("shell: name is required")
	}
	if len(cfg.Catalog) == 0 {
		return nil, fmt.Errorf("shell %s: catalog is empty", cfg.Name)
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("shell %s: %w", cfg.Name, err)
	}
	if cfg.RoleSource == nil {
		cfg.RoleSource = IdentityOrRoute(cfg.Catalog)
	}
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = SettingsPath
	}
	if cfg.LogoutPath == "" {
		cfg.LogoutPath = LogoutPath
	}
	return &Shell{cfg: cfg}, nil
}

// MustShell is NewShell for the built-in configurations.
func MustShell(cfg ShellConfig) *Shell {
	s, err := NewShell(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Shell) Name() string         { return s.cfg.Name }
func (s *Shell) Policy() MatchPolicy  { return s.cfg.Policy }
func (s *Shell) Catalog() Catalog     { return s.cfg.Catalog }
func (s *Shell) SettingsPath() string { return s.cfg.SettingsPath }
func (s *Shell) LogoutPath() string   { return s.cfg.LogoutPath }

// Serves reports whether the shell has a menu for role.
func (s *Shell) Serves(role Role) bool {
	_, ok := s.cfg.Catalog[role]
	return ok
}

// HomeFor is the first entry of the role's menu, the landing page after
// sign-in.
func (s *Shell) HomeFor(role Role) string {
	entries := s.cfg.Catalog[role]
	if len(entries) == 0 {
		return s.cfg.LogoutPath
	}
	return entries[0].Target
}

// Home is the landing page of role across the built-in catalogs.
func Home(role Role) string {
	for _, catalog := range []Catalog{AdminCatalog, GameMasterCatalog} {
		if entries := catalog[role]; len(entries) > 0 {
			return entries[0].Target
		}
	}
	return LogoutPath
}

// View is everything the renderer needs for one pass.
type View struct {
	Shell       string          `json:"shell"`
	Role        Role            `json:"-"`
	RoleName    string          `json:"role"`
	RoleLabel   string          `json:"role_label"`
	UserName    string          `json:"user_name"`
	CurrentPath string          `json:"current_path"`
	Entries     []ResolvedEntry `json:"entries"`
	State       ShellState      `json:"state"`
}

// Active returns the active entry, if any.
func (v View) Active() (ResolvedEntry, bool) {
	if i := ActiveIndex(v.Entries); i >= 0 {
		return v.Entries[i], true
	}
	return ResolvedEntry{}, false
}

// RoleFor resolves the role context for a location and identity.
func (s *Shell) RoleFor(currentPath string, identity *Identity) Role {
	return s.cfg.RoleSource(currentPath, identity)
}

// Entries resolves the annotated menu for a location and identity.
func (s *Shell) Entries(currentPath string, identity *Identity) (Role, []ResolvedEntry) {
	role := s.RoleFor(currentPath, identity)
	return role, Resolve(s.cfg.Catalog.MenuFor(role), currentPath, s.cfg.Policy)
}

// View composes role, menu and state. The state only travels through; it
// never influences entries or active flags.
func (s *Shell) View(currentPath string, identity *Identity, state ShellState) View {
	role, entries := s.Entries(currentPath, identity)
	return s.Compose(role, entries, currentPath, identity, state)
}

// Compose builds a view from entries resolved earlier, for instance by a
// cache in front of Entries.
func (s *Shell) Compose(role Role, entries []ResolvedEntry, currentPath string, identity *Identity, state ShellState) View {
	name := defaultUserName
	if identity != nil && identity.Name != "" {
		name = identity.Name
	}
	return View{
		Shell:       s.cfg.Name,
		Role:        role,
		RoleName:    role.String(),
		RoleLabel:   role.Label(),
		UserName:    name,
		CurrentPath: currentPath,
		Entries:     entries,
		State:       state,
	}
}

// Mount creates a shell instance bound to router with fresh state. When the
// router implements PathNotifier the view is re-derived on every change.
func (s *Shell) Mount(router Router, identity *Identity) *Mounted {
	return s.Restore(router, identity, NewShellState())
}

// Restore mounts a shell that continues from state, for hosts where the
// state travels with each request instead of living in memory.
func (s *Shell) Restore(router Router, identity *Identity, state ShellState) *Mounted {
	m := &Mounted{
		shell:    s,
		router:   router,
		identity: identity,
		state:    state,
	}
	m.refresh(router.CurrentPath())
	if notifier, ok := router.(PathNotifier); ok {
		m.cancel = notifier.Subscribe(m.refresh)
	}
	return m
}

// Mounted is one live shell with exclusively owned state.
type Mounted struct {
	shell    *Shell
	router   Router
	identity *Identity

	mu      sync.Mutex
	state   ShellState
	path    string
	role    Role
	entries []ResolvedEntry
	cancel  func()
}

func (m *Mounted) refresh(path string) {
	role, entries := m.shell.Entries(path, m.identity)
	m.mu.Lock()
	m.path, m.role, m.entries = path, role, entries
	m.mu.Unlock()
}

// View returns the most recently derived view.
func (m *Mounted) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]ResolvedEntry, len(m.entries))
	copy(entries, m.entries)
	return m.shell.Compose(m.role, entries, m.path, m.identity, m.state)
}

func (m *Mounted) State() ShellState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mounted) ToggleSidebar() ShellState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = m.state.ToggleSidebar()
	return m.state
}

func (m *Mounted) ToggleAccountMenu(open bool) ShellState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = m.state.ToggleAccountMenu(open)
	return m.state
}

// Select navigates to a menu target. The router stays the only owner of the
// current location, so nothing local changes.
func (m *Mounted) Select(target string) {
	m.router.Navigate(target)
}

// Settings closes the account menu, then navigates to the settings page.
func (m *Mounted) Settings() {
	m.ToggleAccountMenu(false)
	m.router.Navigate(m.shell.cfg.SettingsPath)
}

// Logout closes the account menu, then navigates to the sign-in page.
func (m *Mounted) Logout() {
	m.ToggleAccountMenu(false)
	m.router.Navigate(m.shell.cfg.LogoutPath)
}

// Unmount drops the path subscription. The state is discarded with m.
func (m *Mounted) Unmount() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
