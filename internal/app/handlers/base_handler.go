package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/lovebell/internal/app/guard"
	"github.com/FACorreiaa/lovebell/internal/app/i18n"
	"github.com/FACorreiaa/lovebell/internal/app/middleware"
	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/navbar"
	"github.com/FACorreiaa/lovebell/internal/app/observability/metrics"
	"github.com/FACorreiaa/lovebell/internal/app/pages"
	"github.com/FACorreiaa/lovebell/internal/app/session"
	"github.com/FACorreiaa/lovebell/internal/app/view"
)

type BaseHandler struct {
	Logger      *zap.Logger
	Cookies     session.CookieOptions
	DefaultLang language.Tag
}

func NewBaseHandler(logger *zap.Logger, cookies session.CookieOptions, defaultLang language.Tag) *BaseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseHandler{Logger: logger, Cookies: cookies, DefaultLang: defaultLang}
}

func (h *BaseHandler) Session(c *gin.Context) *session.Context {
	return session.NewContext(session.NewCookieStorage(c, h.Cookies), h.Logger)
}

func (h *BaseHandler) Translator(c *gin.Context) *i18n.Translator {
	return i18n.New(i18n.Match(c.GetHeader("Accept-Language"), h.DefaultLang))
}

// RenderPage renders page, runs the guard its markers ask for and, when
// admitted, applies the navbar and the user-specific fragments.
func (h *BaseHandler) RenderPage(c *gin.Context, page models.Page, content templ.Component) {
	ctx := c.Request.Context()
	sess := h.Session(c)
	tr := h.Translator(c)

	var buf bytes.Buffer
	if err := pages.LayoutPage(models.LayoutTempl{
		Page:    page,
		Lang:    tr.Lang(),
		Content: content,
	}).Render(ctx, &buf); err != nil {
		h.Logger.Error("Failed to render page", zap.String("page", page.Path), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		h.Logger.Error("Failed to parse rendered page", zap.String("page", page.Path), zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	body := doc.Find("body")
	_, requiresLogin := body.Attr(pages.MarkerRequiresLogin)
	_, requiresAuth := body.Attr(pages.MarkerRequiresAuth)
	_, requiresAdmin := body.Attr(pages.MarkerRequiresAdmin)
	req := guard.RequirementFromMarkers(requiresLogin, requiresAuth, requiresAdmin)

	g := guard.New(sess, guard.Notices{
		AccountDisabled: tr.AccountDisabled(),
		AdminRequired:   tr.AdminRequired(),
	}, h.Logger)
	outcome := g.Evaluate(req)
	metrics.RecordGuardDecision(ctx, req.String(), outcome.Decision.String(), string(outcome.Reason))

	if !outcome.IsAllowed() {
		h.Logger.Debug("Guard redirect",
			zap.String("page", page.Path),
			zap.String("destination", outcome.Destination),
			zap.String("reason", string(outcome.Reason)))
		sess.SetNotice(outcome.Notice)
		middleware.RedirectTo(c, outcome.Destination)
		return
	}

	start := time.Now()
	user := sess.CurrentUser()
	if err := navbar.Render(ctx, doc, user, tr); err != nil {
		h.Logger.Error("Failed to render navbar", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	view.UpdateInterface(view.NewDocumentBinder(doc), user)
	if notice, ok := sess.TakeNotice(); ok {
		if err := h.insertNotice(c, doc, notice); err != nil {
			h.Logger.Error("Failed to render notice", zap.Error(err))
		}
	}
	metrics.Get().NavbarRenderDuration.Record(ctx, time.Since(start).Seconds())

	html, err := doc.Html()
	if err != nil {
		h.Logger.Error("Failed to serialize page", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// insertNotice places a pending notice right below the navbar. It is only
// consumed by a page that is actually shown.
func (h *BaseHandler) insertNotice(c *gin.Context, doc *goquery.Document, notice string) error {
	var sb strings.Builder
	if err := pages.Notice(notice).Render(c.Request.Context(), &sb); err != nil {
		return err
	}
	doc.Find("#navbarContainer").AfterHtml(sb.String())
	return nil
}
