package models

import "github.com/a-h/templ"

// Navigation targets. These are fixed; pages link to each other by path.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteHome     = "/chat"
	RouteProfile  = "/profile"
	RouteAdmin    = "/admin"
	RouteLogout   = "/logout"
	RouteSession  = "/session"
)

type NavItem struct {
	Name string
	URL  string
	Icon string
}

type Navigation struct {
	Items []NavItem
}

// Page describes a server-rendered page and the access it demands.
// RequiresLogin only asks for the session keys; RequiresAuth also checks
// the record.
type Page struct {
	Title         string
	Path          string
	RequiresLogin bool
	RequiresAuth  bool
	RequiresAdmin bool
}

type LayoutTempl struct {
	Page    Page
	Lang    string
	Content templ.Component
}

var (
	LoginPage    = Page{Title: "Sign in - Love Bell", Path: RouteLogin}
	RegisterPage = Page{Title: "Register - Love Bell", Path: RouteRegister}
	ChatPage     = Page{Title: "Love Bell", Path: RouteHome, RequiresAuth: true}
	ProfilePage  = Page{Title: "Profile - Love Bell", Path: RouteProfile, RequiresAuth: true}
	AdminPage    = Page{Title: "Admin console - Love Bell", Path: RouteAdmin, RequiresAdmin: true}
)
