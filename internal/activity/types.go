package activity

import (
	"time"

	"workpulse/internal/model"
)

// LogEntry is a single activity observation to record.
type LogEntry struct {
	ActivityType    string         `json:"activity_type"`
	AppID           string         `json:"app_id"`
	ActivityData    map[string]any `json:"activity_data"`
	DurationSeconds int            `json:"duration_seconds"`
	Timestamp       time.Time      `json:"timestamp"`
}

// LogInput holds one or more activities to append to the log.
type LogInput struct {
	Entries []LogEntry
}

// LogOutput returns the recorded activities.
type LogOutput struct {
	Activities []model.Activity `json:"activities"`
	Count      int              `json:"count"`
}

// ListInput holds filters for reading back the activity log.
type ListInput struct {
	Type  string
	Date  string
	Limit int
}

// ListOutput returns activities matching the filters.
type ListOutput struct {
	Activities []model.Activity `json:"activities"`
	Total      int              `json:"total"`
}
