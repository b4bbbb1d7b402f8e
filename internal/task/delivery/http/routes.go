package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/score", mw.Auth(), h.Score)
		ai.POST("/infer", mw.Auth(), h.Infer)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("/:id/complete", mw.Auth(), h.Complete)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
