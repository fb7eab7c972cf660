package view

import "github.com/FACorreiaa/lovebell/internal/app/session"

// UpdateInterface shows the user-specific parts of a page. A nil user
// leaves the page in its logged-out state. Admin-only elements are only
// ever revealed here, never hidden.
func UpdateInterface(b Binder, user *session.Record) {
	if user == nil {
		return
	}

	b.SetText(SelectorUsername, user.Username)
	if user.IsAdmin() {
		b.SetVisible(SelectorAdminOnly, true)
	}
	b.SetVisible(SelectorLoggedIn, true)
	b.SetVisible(SelectorLoggedOut, false)
}
