package ingest

import (
	"workpulse/internal/activity"
	"workpulse/internal/task"
	pkgLog "workpulse/pkg/log"
)

// Handler accepts signed activity batches from enrolled apps, records them
// and feeds them through task inference in the background.
type Handler struct {
	activityUC activity.UseCase
	taskUC     task.UseCase
	security   *SecurityValidator
	l          pkgLog.Logger
}

func NewHandler(
	activityUC activity.UseCase,
	taskUC task.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		activityUC: activityUC,
		taskUC:     taskUC,
		security:   NewSecurityValidator(securityConfig),
		l:          l,
	}
}
