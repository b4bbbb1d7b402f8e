package repository

import (
	"time"

	"workpulse/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID               string
	WorkspaceID          string
	AppID                string
	Title                string
	Description          string
	Status               model.TaskStatus
	PriorityScore        int
	UrgencyLevel         string
	Deadline             *time.Time
	CompletionPercentage int
	IsAIGenerated        bool
	SourceType           string
	SourceReference      string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// CreatedFrom/CreatedTo bound the creation timestamp when non-zero.
type ListTasksOptions struct {
	UserID        string
	ID            string
	Status        model.TaskStatus
	Statuses      []model.TaskStatus
	CreatedFrom   time.Time
	CreatedTo     time.Time
	CompletedFrom time.Time
	CompletedTo   time.Time
	OrderBy       string
	Limit         int
	Offset        int
}

// UpdateTaskScoreOptions holds parameters for persisting a recomputed score.
type UpdateTaskScoreOptions struct {
	ID            string
	UserID        string
	PriorityScore int
	UrgencyLevel  string
}

// CompleteTaskOptions holds parameters for marking a Task completed.
type CompleteTaskOptions struct {
	ID          string
	UserID      string
	CompletedAt time.Time
}

// CreateExplanationOptions holds parameters for inserting a scoring explanation.
type CreateExplanationOptions struct {
	TaskID          string
	UserID          string
	ExplanationText string
	Factors         map[string]any
}

// ListExplanationsOptions holds filter parameters for listing explanations.
type ListExplanationsOptions struct {
	TaskID string
	UserID string
	Limit  int
}
