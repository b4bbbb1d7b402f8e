package ingest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoint. Deliberately outside the
// /api/v1 group: callers authenticate with a payload signature, not a user.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.POST("/webhook/activities", h.HandleActivityWebhook)
}
