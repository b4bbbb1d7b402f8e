package notification

import (
	"context"

	"workpulse/internal/model"
)

// UseCase exposes the dashboard notification operations.
type UseCase interface {
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) (DismissOutput, error)
}
