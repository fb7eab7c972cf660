package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/lovebell/internal/app/handlers"
	"github.com/FACorreiaa/lovebell/internal/app/middleware"
	"github.com/FACorreiaa/lovebell/internal/app/models"
)

type AppHandlers struct {
	Pages   *handlers.PageHandlers
	Session *handlers.SessionHandlers
}

func NewAppHandlers(base *handlers.BaseHandler) *AppHandlers {
	return &AppHandlers{
		Pages:   handlers.NewPageHandlers(base),
		Session: handlers.NewSessionHandlers(base),
	}
}

func Setup(r *gin.Engine, h *AppHandlers, log *zap.Logger) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pagesGroup := r.Group("/", middleware.NoStoreMiddleware())
	{
		pagesGroup.GET("/", h.Pages.ShowIndex)
		pagesGroup.GET(models.RouteLogin, h.Pages.ShowLoginPage)
		pagesGroup.GET(models.RouteRegister, h.Pages.ShowRegisterPage)
		pagesGroup.GET(models.RouteHome, h.Pages.ShowChatPage)
		pagesGroup.GET(models.RouteProfile, h.Pages.ShowProfilePage)
		pagesGroup.GET(models.RouteAdmin, h.Pages.ShowAdminPage)
	}

	r.POST(models.RouteSession, h.Session.Establish)
	r.POST(models.RouteLogout, h.Session.Logout)

	log.Debug("Routes registered", zap.Int("count", len(r.Routes())))
}
