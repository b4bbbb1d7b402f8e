package http

import (
	"workpulse/internal/task"
	pkgErrors "workpulse/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "task title is required")
	case task.ErrDeadlineRequired:
		return pkgErrors.NewHTTPError(400, "task deadline is required")
	case task.ErrEmptyBatch:
		return pkgErrors.NewHTTPError(400, "activity batch is empty")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
