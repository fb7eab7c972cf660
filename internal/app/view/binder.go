// Package view applies session state to a rendered page through a small
// set of DOM capabilities.
package view

// Selectors and classes that make up the page contract.
const (
	SelectorUsername  = ".user-username"
	SelectorAdminOnly = ".admin-only"
	SelectorLoggedIn  = ".logged-in-only"
	SelectorLoggedOut = ".logged-out-only"

	HiddenClass = "hidden"
)

// Binder is what the updater needs from a page. Every method applies to all
// elements matching selector and is a no-op when nothing matches.
type Binder interface {
	SetText(selector, text string)
	ToggleClass(selector, class string, on bool)
	SetVisible(selector string, visible bool)
}
