package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/lovebell/internal/app/models"
	"github.com/FACorreiaa/lovebell/internal/app/pages"
	"github.com/FACorreiaa/lovebell/internal/app/session"
)

func TestRenderPageLoginOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewBaseHandler(zap.NewNop(), session.CookieOptions{Path: "/", MaxAge: 3600}, language.English)

	r := gin.New()
	r.GET("/lobby", func(c *gin.Context) {
		h.RenderPage(c, models.Page{Title: "Lobby", Path: "/lobby", RequiresLogin: true}, pages.ChatPage())
	})

	serve := func(cookies map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/lobby", nil)
		for name, value := range cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: url.QueryEscape(value)})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("it admits any stored session without reading the record", func(t *testing.T) {
		w := serve(map[string]string{session.FlagKey: "true", session.RecordKey: "garbage"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("it sends visitors without a session to login", func(t *testing.T) {
		w := serve(nil)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, models.RouteLogin, w.Header().Get("Location"))
	})
}
