package repository

import "time"

// CreateActivityOptions holds parameters for appending an activity record.
type CreateActivityOptions struct {
	UserID          string
	WorkspaceID     string
	AppID           string
	ActivityType    string
	ActivityData    map[string]any
	DurationSeconds int
	Timestamp       time.Time
}

// ListActivitiesOptions holds filter parameters for reading the activity log.
// From/To bound the activity timestamp when non-zero.
type ListActivitiesOptions struct {
	UserID string
	Type   string
	From   time.Time
	To     time.Time
	Limit  int
}
