package model

import "time"

// Activity types the inference engine and habit analyzer dispatch on.
// The column is free-form; unknown types are logged but never scored.
const (
	ActivityEmailReceived    = "email_received"
	ActivityMeetingScheduled = "meeting_scheduled"
	ActivityDocumentEdited   = "document_edited"
	ActivityTaskMentioned    = "task_mentioned"
	ActivityTaskSwitched     = "task_switched"
)

// Activity is one row of the append-only activity log: a raw signal from an
// enrolled app, used for task inference and daily habit analysis.
type Activity struct {
	ID              string
	UserID          string
	WorkspaceID     string // optional
	AppID           string // optional
	ActivityType    string
	ActivityData    map[string]any
	DurationSeconds int
	Timestamp       time.Time
}
