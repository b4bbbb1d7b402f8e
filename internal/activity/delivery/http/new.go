package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/activity"
	"workpulse/pkg/log"
)

// Handler is the public interface for the activity HTTP delivery layer.
type Handler interface {
	Log(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc activity.UseCase
}

// New creates a new HTTP handler for the activity domain.
func New(l log.Logger, uc activity.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
