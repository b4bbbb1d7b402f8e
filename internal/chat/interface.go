package chat

import (
	"context"

	"workpulse/internal/model"
)

// UseCase answers user messages about tasks, productivity and deadlines.
type UseCase interface {
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)
}
