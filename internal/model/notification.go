package model

import "time"

// NotificationStatus is the display lifecycle of a popup notification.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationShown     NotificationStatus = "shown"
	NotificationDismissed NotificationStatus = "dismissed"
	NotificationScheduled NotificationStatus = "scheduled"
)

// Notification is a dashboard popup, optionally linked to a task.
type Notification struct {
	ID               string
	UserID           string
	TaskID           string // optional
	NotificationType string
	Title            string
	Message          string
	Priority         string
	Status           NotificationStatus
	ScheduledFor     *time.Time
	ActionURL        string
	CreatedAt        time.Time
	DismissedAt      *time.Time
}
