package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/chat", mw.Auth(), h.Chat)
	}
}
