// Package navbar injects the shared navigation bar into rendered pages.
package navbar

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"

	"github.com/FACorreiaa/lovebell/internal/app/i18n"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

// Render writes the navbar shell into #navbarContainer and fills the user
// container with the menu for user. Pages without the container are left
// unchanged.
func Render(ctx context.Context, doc *goquery.Document, user *session.Record, tr *i18n.Translator) error {
	container := doc.Find("#" + ContainerID)
	if container.Length() == 0 {
		return nil
	}

	shell, err := renderString(ctx, Shell(tr))
	if err != nil {
		return err
	}
	container.SetHtml(shell)

	var menu templ.Component
	if user != nil {
		menu = UserMenu(*user, tr)
	} else {
		menu = AnonymousMenu(tr)
	}
	html, err := renderString(ctx, menu)
	if err != nil {
		return err
	}
	container.Find("#" + UserContainerID).SetHtml(html)
	return nil
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
