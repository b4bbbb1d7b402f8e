package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/habit"
	"workpulse/pkg/log"
)

// Handler is the public interface for the habit HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Latest(c *gin.Context)
	History(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc habit.UseCase
}

// New creates a new HTTP handler for the habit domain.
func New(l log.Logger, uc habit.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
