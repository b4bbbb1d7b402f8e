package repository

import (
	"context"

	"workpulse/internal/model"
)

// Repository is the composed interface for the notification data store.
type Repository interface {
	CreateNotification(ctx context.Context, opt CreateNotificationOptions) (model.Notification, error)
	ListNotifications(ctx context.Context, opt ListNotificationsOptions) ([]model.Notification, int, error)
	DismissNotification(ctx context.Context, opt DismissNotificationOptions) (model.Notification, error)
}
