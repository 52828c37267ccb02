package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/foresight-shell/internal/app/models"
)

func document(title string, prefs models.Preferences, body templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw("<!DOCTYPE html><html")
		m.attr("lang", prefs.Language)
		m.attr("dir", prefs.Direction)
		m.attr("data-theme", prefs.Theme)
		m.class(cond(prefs.Theme == models.ThemeLight, "", "dark"))
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(title)
		m.raw(`</title><link rel="stylesheet" href="/assets/css/shell.css">`)
		m.raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		m.raw(`<script src="https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js" defer></script>`)
		m.raw(`<script src="/assets/js/shell.js" defer></script></head><body hx-boost="true">`)
		m.component(body)
		m.raw("</body></html>")
	})
}

// LayoutPage renders a full page inside the navigation shell.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return document(data.Title, data.Preferences, Shell(data))
}

// BarePage renders a page without the shell, used for sign-in.
func BarePage(title string, prefs models.Preferences, body templ.Component) templ.Component {
	return document(title, prefs, body)
}
