package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	activities := rg.Group("/activities")
	{
		activities.POST("", mw.Auth(), h.Log)
		activities.GET("", mw.Auth(), h.List)
	}
}
