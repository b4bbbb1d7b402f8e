package task

import (
	"context"

	"workpulse/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Score runs the priority aggregator over the user's open tasks (or a
	// single task), persisting score, urgency, and an explanation row each.
	Score(ctx context.Context, sc model.Scope, input ScoreInput) (ScoreOutput, error)

	// InferFromActivities converts a batch of activity events into draft
	// tasks. Unknown activity types are skipped, not rejected.
	InferFromActivities(ctx context.Context, sc model.Scope, input InferInput) (InferOutput, error)

	// Create stores a manual entry scored by the keyword heuristic.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the owner's tasks with optional status filter and sort.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Complete marks a task completed at the current time.
	Complete(ctx context.Context, sc model.Scope, id string) (CompleteOutput, error)

	// Delete removes a task permanently.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
