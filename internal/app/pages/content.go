package pages

import (
	"github.com/a-h/templ"
)

// ErrorBanner is swapped into forms on failed submissions.
func ErrorBanner(id, message string) templ.Component {
	return component(func(m *markup) {
		m.raw("<div")
		m.attr("id", id)
		m.raw(` role="alert" class="rounded-md border border-destructive/40 bg-destructive/10 px-4 py-3 text-sm text-destructive">`)
		m.text(message)
		m.raw("</div>")
	})
}

// SignInPage is the landing page and the logout destination.
func SignInPage(errMessage string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<div class="min-h-screen flex items-center justify-center"><form id="signin-form" method="post" action="/auth/signin" hx-post="/auth/signin" hx-target="#signin-feedback" class="w-full max-w-sm space-y-4 rounded-xl bg-card/80 p-8 shadow-2xl">`)
		m.raw(`<h1 class="text-xl font-display font-bold text-white">Sign in</h1><div id="signin-feedback">`)
		if errMessage != "" {
			m.component(ErrorBanner("signin-error", errMessage))
		}
		m.raw(`</div><label class="block text-sm">Username<input name="username" autocomplete="username" required class="mt-1 w-full rounded-md bg-background px-3 py-2"></label>`)
		m.raw(`<label class="block text-sm">Password<input name="password" type="password" autocomplete="current-password" required class="mt-1 w-full rounded-md bg-background px-3 py-2"></label>`)
		m.raw(`<button type="submit" class="w-full rounded-md bg-brand-green px-4 py-2 font-semibold text-white">Sign in</button></form></div>`)
	})
}

// PlaceholderPage stands in for the page bodies, which live outside the
// shell.
func PlaceholderPage(title, path string) templ.Component {
	return component(func(m *markup) {
		m.raw(`<section data-page="`)
		m.text(path)
		m.raw(`"><h1 class="text-2xl font-bold text-white">`)
		m.text(title)
		m.raw(`</h1><p class="mt-2 text-sm text-muted-foreground">`)
		m.text(path)
		m.raw("</p></section>")
	})
}

func SettingsPage() templ.Component {
	return PlaceholderPage("Settings", "/settings")
}
