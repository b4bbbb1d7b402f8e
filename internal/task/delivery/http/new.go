package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/task"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Score(c *gin.Context)
	Infer(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       task.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
