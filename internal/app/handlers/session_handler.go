package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/lovebell/internal/app/middleware"
	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/observability/metrics"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

// SessionHandlers move a session between its two states. Establish is the
// hand-off point for the external login flow, which has already checked the
// credentials and produced the user record.
type SessionHandlers struct {
	*BaseHandler
}

func NewSessionHandlers(base *BaseHandler) *SessionHandlers {
	return &SessionHandlers{BaseHandler: base}
}

func (h *SessionHandlers) Establish(c *gin.Context) {
	var rec session.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("%w: %v", models.ErrValidation, err).Error()})
		return
	}
	if rec.Role == "" {
		rec.Role = session.RoleUser
	}
	if rec.Status == "" {
		rec.Status = session.StatusActive
	}

	sess := h.Session(c)
	if err := sess.Establish(rec); err != nil {
		h.Logger.Error("Failed to establish session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to establish session"})
		return
	}
	metrics.Get().SessionHandoffsTotal.Add(c.Request.Context(), 1)

	h.Logger.Info("Session established", zap.String("username", rec.Username), zap.String("role", string(rec.Role)))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"user":     rec,
		"redirect": models.RouteHome,
	})
}

// Logout clears the session and returns to the login page.
func (h *SessionHandlers) Logout(c *gin.Context) {
	h.Session(c).Clear()
	metrics.Get().LogoutsTotal.Add(c.Request.Context(), 1)
	middleware.RedirectTo(c, models.RouteLogin)
}
