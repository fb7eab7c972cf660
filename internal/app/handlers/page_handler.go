package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/pages"
)

type PageHandlers struct {
	*BaseHandler
}

func NewPageHandlers(base *BaseHandler) *PageHandlers {
	return &PageHandlers{BaseHandler: base}
}

func (h *PageHandlers) ShowIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, models.RouteHome)
}

func (h *PageHandlers) ShowLoginPage(c *gin.Context) {
	h.RenderPage(c, models.LoginPage, pages.LoginPage())
}

func (h *PageHandlers) ShowRegisterPage(c *gin.Context) {
	h.RenderPage(c, models.RegisterPage, pages.RegisterPage())
}

func (h *PageHandlers) ShowChatPage(c *gin.Context) {
	h.RenderPage(c, models.ChatPage, pages.ChatPage())
}

func (h *PageHandlers) ShowProfilePage(c *gin.Context) {
	h.RenderPage(c, models.ProfilePage, pages.ProfilePage())
}

func (h *PageHandlers) ShowAdminPage(c *gin.Context) {
	h.RenderPage(c, models.AdminPage, pages.AdminPage())
}
