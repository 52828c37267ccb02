package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
	"github.com/FACorreiaa/foresight-shell/internal/app/navigation"
)

// LanguageSwitch lists the supported languages; the current one is marked.
func LanguageSwitch(prefs models.Preferences) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div id="language-switch" class="flex items-center gap-1">`)
		m.component(Icon(navigation.IconLanguages, "w-4 h-4 text-muted-foreground"))
		for _, lang := range prefs.Languages {
			current := lang == prefs.Language
			m.raw(`<button type="button" hx-post="/preferences/language"`)
			m.vals(map[string]string{"lang": lang})
			m.attr("data-lang", lang)
			m.attr("data-current", cond(current, "true", "false"))
			m.class("px-2 py-1 rounded text-xs uppercase", cond(current, "text-white bg-white/10", "text-muted-foreground hover:text-foreground"))
			m.raw(">")
			m.text(strings.ToUpper(lang))
			m.raw("</button>")
		}
		m.raw("</div>")
	})
}

// ThemeToggle flips between dark and light.
func ThemeToggle(prefs models.Preferences) templ.Component {
	icon := navigation.IconMoon
	if prefs.Theme == models.ThemeLight {
		icon = navigation.IconSun
	}
	return component(func(m *markup) {
		m.raw(`<button type="button" id="theme-toggle" hx-post="/preferences/theme" hx-swap="outerHTML"`)
		m.attr("data-theme", prefs.Theme)
		m.raw(` class="inline-flex items-center justify-center w-10 h-10 rounded-md text-muted-foreground hover:text-foreground hover:bg-white/5">`)
		m.component(Icon(icon))
		m.raw("</button>")
	})
}
