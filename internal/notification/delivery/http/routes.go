package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notifications := rg.Group("/notifications")
	{
		notifications.POST("", mw.Auth(), h.Schedule)
		notifications.GET("", mw.Auth(), h.List)
		notifications.POST("/:id/dismiss", mw.Auth(), h.Dismiss)
	}
}
