package activity

import (
	"context"

	"workpulse/internal/model"
)

// UseCase exposes the activity log operations.
type UseCase interface {
	Log(ctx context.Context, sc model.Scope, input LogInput) (LogOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
