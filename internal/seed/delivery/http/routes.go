package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/bootstrap", mw.Auth(), h.Bootstrap)
}
