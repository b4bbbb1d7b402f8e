package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// Well-known source_type tags. The column itself is free-form: inference
// writes the originating activity type verbatim.
const (
	SourceEmail    = "email"
	SourceMeeting  = "meeting"
	SourceDocument = "document"
	SourceManualAI = "manual_ai"
)

// Task is a unit of work surfaced on the dashboard. Priority fields are
// owned by the scoring pipeline; status and completion fields by user actions.
type Task struct {
	ID                   string
	UserID               string
	WorkspaceID          string // optional
	AppID                string // optional
	Title                string
	Description          string
	Status               TaskStatus
	PriorityScore        int
	UrgencyLevel         string
	Deadline             *time.Time
	CompletionPercentage int
	IsAIGenerated        bool
	SourceType           string
	SourceReference      string
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
