package repository

import (
	"context"

	"workpulse/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	ExplanationRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTaskScore(ctx context.Context, opt UpdateTaskScoreOptions) (model.Task, error)
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
}

// ExplanationRepository defines data access methods for scoring explanations.
type ExplanationRepository interface {
	CreateExplanation(ctx context.Context, opt CreateExplanationOptions) (model.AIExplanation, error)
	ListExplanations(ctx context.Context, opt ListExplanationsOptions) ([]model.AIExplanation, error)
}
