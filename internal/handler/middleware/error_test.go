//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"neighbiz/internal/handler/httperr"
	"neighbiz/internal/handler/middleware"
	"neighbiz/internal/pkg/errs"
	"neighbiz/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.GET("/coded", func(c *gin.Context) {
		httperr.Respond(c, errs.Conflict("TEST_CONFLICT", "already there"))
	})
	router.GET("/bare-error", func(c *gin.Context) {
		_ = c.Error(errs.New("lost"))
	})
	router.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("coded error keeps its status", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/coded", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "already there")
	})

	t.Run("unwritten private error becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bare-error", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("success untouched", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
