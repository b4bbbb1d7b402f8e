package repository

import (
	"context"

	"workpulse/internal/model"
)

// Repository is the composed interface for the work-habit data store.
type Repository interface {
	UpsertWorkHabit(ctx context.Context, opt UpsertWorkHabitOptions) (model.WorkHabit, error)
	GetLatestWorkHabit(ctx context.Context, userID string) (model.WorkHabit, error)
	ListWorkHabits(ctx context.Context, opt ListWorkHabitsOptions) ([]model.WorkHabit, error)
}
