package repository

import (
	"context"

	"workpulse/internal/model"
)

// Repository is the composed interface for the activity domain data store.
// The activity log is append-only; there are no update or delete methods.
type Repository interface {
	CreateActivities(ctx context.Context, opts []CreateActivityOptions) ([]model.Activity, error)
	ListActivities(ctx context.Context, opt ListActivitiesOptions) ([]model.Activity, int, error)
}
