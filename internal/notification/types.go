package notification

import (
	"time"

	"workpulse/internal/model"
)

// ScheduleInput creates a new popup, optionally deferred to a later time.
type ScheduleInput struct {
	TaskID           string
	NotificationType string
	Title            string
	Message          string
	Priority         string
	ScheduledFor     *time.Time
	ActionURL        string
}

// ScheduleOutput returns the created notification.
type ScheduleOutput struct {
	Notification model.Notification `json:"notification"`
}

// ListInput holds filters for the notification feed.
type ListInput struct {
	Status string
	Limit  int
}

// ListOutput returns notifications matching the filters.
type ListOutput struct {
	Notifications []model.Notification `json:"notifications"`
	Total         int                  `json:"total"`
}

// DismissOutput returns the dismissed notification.
type DismissOutput struct {
	Notification model.Notification `json:"notification"`
}
