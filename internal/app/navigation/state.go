package navigation

// ShellState is the UI state owned by one mounted shell.
type ShellState struct {
	SidebarExpanded bool `json:"sidebar_expanded"`
	AccountMenuOpen bool `json:"account_menu_open"`
}

// NewShellState is the state of a freshly mounted shell.
func NewShellState() ShellState {
	return ShellState{SidebarExpanded: true}
}

// ToggleSidebar flips the collapse state.
func (s ShellState) ToggleSidebar() ShellState {
	s.SidebarExpanded = !s.SidebarExpanded
	return s
}

// ToggleAccountMenu sets the account menu to open; it does not flip.
func (s ShellState) ToggleAccountMenu(open bool) ShellState {
	s.AccountMenuOpen = open
	return s
}

const (
	sidebarExpanded  = "expanded"
	sidebarCollapsed = "collapsed"
	accountOpen      = "open"
	accountClosed    = "closed"
)

// SidebarValue is the form encoding of the sidebar state.
func (s ShellState) SidebarValue() string {
	if s.SidebarExpanded {
		return sidebarExpanded
	}
	return sidebarCollapsed
}

// AccountValue is the form encoding of the account menu state.
func (s ShellState) AccountValue() string {
	if s.AccountMenuOpen {
		return accountOpen
	}
	return accountClosed
}

// DecodeShellState rebuilds a state from its form encoding. Missing or
// unknown values fall back to the freshly mounted state.
func DecodeShellState(sidebar, account string) ShellState {
	state := NewShellState()
	if sidebar == sidebarCollapsed {
		state.SidebarExpanded = false
	}
	if account == accountOpen {
		state.AccountMenuOpen = true
	}
	return state
}
