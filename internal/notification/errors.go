package notification

import "errors"

var (
	ErrTitleRequired        = errors.New("notification title is required")
	ErrNotificationNotFound = errors.New("notification not found")
)
