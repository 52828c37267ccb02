package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

const (
	SidebarID       = "shell-sidebar"
	SidebarStateID  = "shell-sidebar-state"
	AccountMenuID   = "account-menu"
	AccountStateID  = "account-menu-state"
	CurrentPathID   = "shell-current-path"
	SidebarToggleID = "sidebar-toggle"
)

func shellEndpoint(shell, action string) string {
	return "/shell/" + shell + "/" + action
}

// Icon renders a lucide placeholder replaced client side.
func Icon(name navigation.Icon, classes ...string) templ.Component {
	return component(func(m *markup) {
		m.raw("<i")
		m.attr("data-lucide", string(name))
		m.class(append([]string{"w-5 h-5"}, classes...)...)
		m.raw("></i>")
	})
}

// Sidebar renders the menu of a view. The hidden inputs carry the collapse
// state and location for the next htmx request.
func Sidebar(view navigation.View, branding models.Branding) templ.Component {
	expanded := view.State.SidebarExpanded
	return component(func(m *markup) {
		m.raw("<aside")
		m.attr("id", SidebarID)
		m.attr("data-shell", view.Shell)
		m.attr("data-expanded", cond(expanded, "true", "false"))
		m.class(
			"bg-background/40 backdrop-blur-[10px] border-r border-sidebar-border/50 transition-all duration-500 ease-in-out flex flex-col z-40 shadow-2xl",
			cond(view.Shell == navigation.ShellAdmin, "fixed top-0 left-0 h-screen", ""),
			cond(expanded, "w-64", "w-20"),
		)
		m.raw(">")

		m.raw(`<input type="hidden" name="sidebar"`)
		m.attr("id", SidebarStateID)
		m.attr("value", view.State.SidebarValue())
		m.raw(`><input type="hidden" name="path"`)
		m.attr("id", CurrentPathID)
		m.attr("value", view.CurrentPath)
		m.raw(">")

		m.component(sidebarBrand(view, branding))

		m.raw(`<nav class="flex-1 flex flex-col gap-1 py-8 px-4 space-y-2">`)
		for _, entry := range view.Entries {
			m.component(menuLink(entry, expanded))
		}
		m.raw("</nav>")

		m.raw(`<div class="px-6 py-1 h-13 border-t border-white/5">`)
		m.raw("<div")
		m.class("flex items-center gap-3 px-3 py-2 rounded-md text-muted-foreground transition-colors cursor-pointer opacity-70 hover:opacity-100", cond(expanded, "", "justify-center"))
		m.raw(">")
		m.component(Icon(navigation.IconInfo))
		if expanded {
			m.raw(`<span class="font-medium text-sm">Help &amp; Support</span>`)
		}
		m.raw("</div></div></aside>")
	})
}

func sidebarBrand(view navigation.View, branding models.Branding) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div class="h-20 flex items-center px-6 gap-3">`)
		if view.Shell == navigation.ShellAdmin {
			m.raw(`<img src="/assets/static/sfg_logo.svg" alt="SFG Logo" class="w-auto h-14">`)
		} else {
			m.raw(`<div class="w-8 h-8 rounded bg-brand-green flex items-center justify-center shadow-lg">`)
			m.component(Icon(navigation.IconShieldCheck, "text-white"))
			m.raw("</div>")
			if view.State.SidebarExpanded {
				m.raw(`<div><span class="block font-display font-bold text-lg text-white">`)
				m.text(branding.Product)
				m.raw(`</span><span class="block text-sm text-brand-bright-green tracking-widest">`)
				m.text(branding.ProductTagline)
				m.raw("</span></div>")
			}
		}
		m.raw("</div>")
	})
}

func menuLink(entry navigation.ResolvedEntry, expanded bool) templ.Component {
	return component(func(m *markup) {
		m.raw("<a")
		m.attr("href", entry.Target)
		m.attr("hx-boost", "true")
		m.attr("data-active", cond(entry.Active, "true", "false"))
		if entry.Active {
			m.attr("aria-current", "page")
		}
		m.class(
			"flex items-center gap-4 px-3 py-3 rounded-lg transition-all duration-300 group cursor-pointer",
			cond(entry.Active,
				"bg-brand-dark-green text-white border-l-2",
				"text-muted-foreground hover:text-foreground hover:bg-white/[0.02]"),
		)
		m.raw(">")
		m.component(Icon(entry.Icon, "transition-colors duration-300", cond(entry.Active,
			"text-brand-bright-green drop-shadow-[0_0_8px_rgba(38,208,124,0.5)]",
			"text-muted-foreground/70 group-hover:text-foreground")))
		if expanded {
			m.raw(`<span class="font-medium text-sm tracking-wide">`)
			m.text(entry.Label)
			m.raw("</span>")
		} else {
			m.raw(`<span class="sr-only">`)
			m.text(entry.Label)
			m.raw("</span>")
		}
		m.raw("</a>")
	})
}

// SidebarToggle posts the current collapse state, read from the sidebar's
// hidden input, and swaps the sidebar with the toggled one.
func SidebarToggle(shell string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<button type="button"`)
		m.attr("id", SidebarToggleID)
		m.attr("hx-post", shellEndpoint(shell, "sidebar"))
		m.attr("hx-include", "#"+SidebarStateID+",#"+CurrentPathID)
		m.attr("hx-target", "#"+SidebarID)
		m.attr("hx-swap", "outerHTML")
		m.raw(` class="inline-flex items-center justify-center w-10 h-10 rounded-md text-muted-foreground hover:text-foreground hover:bg-white/5">`)
		m.component(Icon(navigation.IconMenu))
		m.raw("</button>")
	})
}

// AccountMenu renders the avatar trigger and, when open, the dropdown.
func AccountMenu(view navigation.View) templ.Component {
	open := view.State.AccountMenuOpen
	return component(func(m *markup) {
		m.raw("<div")
		m.attr("id", AccountMenuID)
		m.attr("data-open", cond(open, "true", "false"))
		m.raw(` class="relative">`)

		m.raw(`<input type="hidden" name="account"`)
		m.attr("id", AccountStateID)
		m.attr("value", view.State.AccountValue())
		m.raw(">")

		m.raw(`<button type="button" data-role="account-trigger"`)
		m.attr("hx-post", shellEndpoint(view.Shell, "account"))
		m.vals(map[string]string{"open": cond(open, "false", "true")})
		m.attr("hx-include", "#"+CurrentPathID)
		m.attr("hx-target", "#"+AccountMenuID)
		m.attr("hx-swap", "outerHTML")
		m.raw(` class="flex items-center gap-3 pl-2 pr-4 py-1 h-auto hover:bg-white/5 rounded-full border border-transparent transition-all cursor-pointer">`)
		m.raw(`<div class="w-9 h-9 rounded-full border-2 border-brand-green/20 overflow-hidden relative">`)
		m.raw(`<img src="/assets/static/avatar.svg" alt="" class="w-full h-full object-cover">`)
		m.raw(`</div><div class="flex flex-col items-start text-left">`)
		m.raw(`<span data-role="user-name" class="text-sm font-semibold leading-none tracking-tight text-white">`)
		m.text(view.UserName)
		m.raw(`</span><span data-role="role-label" class="text-[10px] text-brand-bright-green uppercase tracking-wider font-bold mt-1">`)
		m.text(view.RoleLabel)
		m.raw("</span></div></button>")

		if open {
			m.raw(`<div role="menu" class="absolute right-0 mt-2 w-56 rounded-md bg-card/95 backdrop-blur-xl border border-white/10 shadow-2xl p-1">`)
			m.raw(`<div class="px-2 py-1.5 text-sm font-semibold">My Account</div><div class="-mx-1 my-1 h-px bg-white/10"></div>`)
			m.component(accountAction(view, "settings", "Settings", navigation.IconSettings,
				"focus:bg-brand-green/20 focus:text-brand-bright-green"))
			m.component(accountAction(view, "logout", "Logout", navigation.IconLogOut,
				"focus:bg-destructive/10 focus:text-destructive text-destructive"))
			m.raw("</div>")
		}
		m.raw("</div>")
	})
}

func accountAction(view navigation.View, action, label string, icon navigation.Icon, extra string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<button type="button" role="menuitem"`)
		m.attr("data-action", action)
		m.attr("hx-post", shellEndpoint(view.Shell, "account/"+action))
		m.attr("hx-include", "#"+CurrentPathID)
		m.attr("hx-target", "#"+AccountMenuID)
		m.attr("hx-swap", "outerHTML")
		m.class("w-full flex items-center rounded-sm px-2 py-1.5 text-sm cursor-pointer", extra)
		m.raw(">")
		m.component(Icon(icon, "mr-2 w-4 h-4"))
		m.text(label)
		m.raw("</button>")
	})
}

func organization(branding models.Branding) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div class="hidden md:flex flex-col items-end mr-4"><span class="text-xs font-display font-bold text-white tracking-widest">`)
		m.text(branding.Organization)
		m.raw(`</span><span class="text-[10px] text-muted-foreground tracking-wider" dir="rtl">`)
		m.text(branding.OrganizationNative)
		m.raw("</span></div>")
	})
}

// Header holds the sidebar toggle, the language and theme collaborators and
// the account menu.
func Header(data models.LayoutTempl) templ.Component {
	view := data.View
	return component(func(m *markup) {
		m.raw("<header")
		m.attr("id", "shell-header")
		m.class(
			"h-14 flex items-center justify-between px-4 border-b border-white/5",
			cond(view.Shell == navigation.ShellAdmin,
				"sticky top-0 z-10 bg-background/30 backdrop-blur-[10px]",
				"relative z-50 w-full bg-background/40 backdrop-blur-xl"),
		)
		m.raw(`><div class="flex items-center gap-8">`)
		m.component(SidebarToggle(view.Shell))
		m.raw(`</div><div class="flex items-center gap-6"><div class="flex items-center gap-1">`)
		m.component(LanguageSwitch(data.Preferences))
		m.component(ThemeToggle(data.Preferences))
		m.raw("</div>")
		m.component(organization(data.Branding))
		m.component(AccountMenu(view))
		m.raw("</div></header>")
	})
}

// Footer is visual only.
func Footer(view navigation.View, branding models.Branding) templ.Component {
	return component(func(m *markup) {
		m.raw("<footer")
		m.attr("id", "shell-footer")
		m.class(
			"h-13 border-t border-white/5 bg-background/50 backdrop-blur-md px-8 flex items-center justify-between text-[10px] text-muted-foreground uppercase tracking-widest",
			cond(view.Shell == navigation.ShellGameMaster, "relative z-40 h-12 w-full", ""),
		)
		m.raw(`><span class="flex items-center gap-2">`)
		m.component(Icon(navigation.IconCopyright, "w-3 h-3"))
		copyright := branding.Copyright
		if view.Shell == navigation.ShellGameMaster && branding.GameMasterCopyright != "" {
			copyright = branding.GameMasterCopyright
		}
		m.text(" " + copyright)
		m.raw("</span><span>VERSION ")
		m.text(branding.Version)
		m.raw("</span></footer>")
	})
}

func content(c templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="shell-content" class="flex-1 overflow-auto p-6 lg:p-8"><div class="max-w-[1600px] mx-auto animate-in fade-in slide-in-from-bottom-4 duration-700">`)
		m.component(c)
		m.raw("</div></div>")
	})
}

// Shell lays out sidebar, header, content and footer. The administrative
// shell puts the header inside the content column; the Game Master shell
// spans header and footer across the full width.
func Shell(data models.LayoutTempl) templ.Component {
	view := data.View
	return component(func(m *markup) {
		m.raw(`<div id="shell"`)
		m.attr("data-shell", view.Shell)
		m.raw(` class="min-h-screen bg-background text-foreground flex overflow-hidden font-sans relative">`)
		m.raw(`<div class="fixed inset-0 z-0 shell-background"></div><div class="fixed inset-0 z-0 bg-background/40 backdrop-blur-[2px]"></div>`)

		if view.Shell == navigation.ShellGameMaster {
			m.raw(`<div class="relative z-40 flex flex-col w-full">`)
			m.component(Header(data))
			m.raw(`<div id="shell-body" class="relative z-40 flex w-full min-h-[calc(100vh-3.5rem)]">`)
			m.component(Sidebar(view, data.Branding))
			m.raw(`<main id="shell-main" class="flex-1 overflow-hidden">`)
			m.component(content(data.Content))
			m.raw("</main></div>")
			m.component(Footer(view, data.Branding))
			m.raw("</div></div>")
			return
		}

		m.component(Sidebar(view, data.Branding))
		m.raw(`<div id="shell-main" class="relative z-40 w-full flex-1 flex flex-col transition-all duration-300"><main class="w-full flex-1 flex flex-col bg-transparent">`)
		m.component(Header(data))
		m.component(content(data.Content))
		m.component(Footer(view, data.Branding))
		m.raw("</main></div></div>")
	})
}
