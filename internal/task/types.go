package task

import (
	"time"

	"workpulse/internal/model"
)

// ScoreInput selects what the priority aggregator scores: one task, or every
// open task the user owns when TaskID is empty.
type ScoreInput struct {
	TaskID string
}

// ScoredTask is one aggregator result.
type ScoredTask struct {
	TaskID        string `json:"task_id"`
	PriorityScore int    `json:"priority_score"`
	UrgencyLevel  string `json:"urgency_level"`
	Explanation   string `json:"explanation"`
}

// ScoreOutput is the result of one scoring pass.
type ScoreOutput struct {
	Tasks []ScoredTask
	Count int
}

// ActivityEvent is one raw activity in an inference batch.
type ActivityEvent struct {
	ActivityType string         `json:"activity_type"`
	ActivityData map[string]any `json:"activity_data"`
	AppID        string         `json:"app_id,omitempty"`
}

// InferInput is a batch of activities to turn into draft tasks.
type InferInput struct {
	Activities []ActivityEvent
}

// InferOutput is the set of tasks created from a batch.
type InferOutput struct {
	Tasks   []model.Task
	Count   int
	Message string // set when nothing was inferred
}

// CreateInput is a manual AI-assisted task entry.
type CreateInput struct {
	WorkspaceID string
	Title       string
	Description string
	Deadline    time.Time
}

// CreateOutput carries the stored task plus the keyword analysis shown
// alongside the entry form.
type CreateOutput struct {
	Task       model.Task
	Complexity int
	Importance int
}

// ListInput filters and pages the owner's tasks.
type ListInput struct {
	Status string
	SortBy string // priority | deadline | complexity
	Limit  int
	Offset int
}

// ListOutput is a page of tasks plus the unpaged total.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// CompleteOutput is the task after a completion action.
type CompleteOutput struct {
	Task model.Task
}
