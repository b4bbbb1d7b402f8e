package repository

import (
	"time"

	"workpulse/internal/model"
)

// CreateNotificationOptions holds parameters for inserting a notification.
type CreateNotificationOptions struct {
	UserID           string
	TaskID           string
	NotificationType string
	Title            string
	Message          string
	Priority         string
	Status           model.NotificationStatus
	ScheduledFor     *time.Time
	ActionURL        string
}

// ListNotificationsOptions holds filter parameters for the feed.
type ListNotificationsOptions struct {
	UserID string
	Status string
	Limit  int
}

// DismissNotificationOptions identifies the notification to dismiss.
type DismissNotificationOptions struct {
	ID          string
	UserID      string
	DismissedAt time.Time
}
