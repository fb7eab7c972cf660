package navbar

import (
	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"

	"github.com/FACorreiaa/lovebell/internal/app/i18n"
	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

const (
	ContainerID     = "navbarContainer"
	UserContainerID = "navbarUserContainer"
	LogoutButtonID  = "logoutBtn"

	linkClass = "nav-link text-gray-700 hover:text-pink-400 mr-2"
)

func userNav(user session.Record, tr *i18n.Translator) models.Navigation {
	var nav models.Navigation
	if user.IsAdmin() {
		nav.Items = append(nav.Items, models.NavItem{Name: tr.AdminConsole(), URL: models.RouteAdmin, Icon: "fa-cog"})
	}
	nav.Items = append(nav.Items, models.NavItem{Name: tr.Profile(), URL: models.RouteProfile, Icon: "fa-user"})
	return nav
}

func anonymousNav(tr *i18n.Translator) models.Navigation {
	return models.Navigation{Items: []models.NavItem{
		{Name: tr.Login(), URL: models.RouteLogin, Icon: "fa-sign-in-alt"},
		{Name: tr.Register(), URL: models.RouteRegister, Icon: "fa-user-plus"},
	}}
}

// navLinkClass overrides the trailing margin of the base link class.
func navLinkClass(extra string) string {
	return twmerge.Merge(linkClass, extra)
}

// anonymousMargin drops the margin after the last link.
func anonymousMargin(i, n int) string {
	if i == n-1 {
		return "mr-0"
	}
	return "mr-4"
}
