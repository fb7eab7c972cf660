// Package pages holds the server-rendered pages. Pages render in their
// logged-out state; the navbar and the user-specific fragments are applied
// afterwards from the session.
package pages

// Body attributes read by the guard before a page is shown.
const (
	MarkerRequiresLogin = "data-requires-login"
	MarkerRequiresAuth  = "data-requires-auth"
	MarkerRequiresAdmin = "data-requires-admin"
)
