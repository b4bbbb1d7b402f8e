package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/seed"
	"workpulse/pkg/log"
)

// Handler is the public interface for the bootstrap HTTP delivery layer.
type Handler interface {
	Bootstrap(c *gin.Context)
}

type handler struct {
	l      log.Logger
	seeder *seed.Seeder
}

// New creates a new HTTP handler for the bootstrap endpoint.
func New(l log.Logger, seeder *seed.Seeder) *handler {
	return &handler{
		l:      l,
		seeder: seeder,
	}
}
