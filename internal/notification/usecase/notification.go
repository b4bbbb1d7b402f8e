package usecase

import (
	"context"

	"workpulse/internal/model"
	"workpulse/internal/notification"
	repo "workpulse/internal/notification/repository"
)

// Schedule creates a notification. Popups with a future ScheduledFor start
// out scheduled; everything else is immediately pending display.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input notification.ScheduleInput) (notification.ScheduleOutput, error) {
	if input.Title == "" {
		return notification.ScheduleOutput{}, notification.ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	status := model.NotificationPending
	if input.ScheduledFor != nil && input.ScheduledFor.After(uc.clock()) {
		status = model.NotificationScheduled
	}

	created, err := uc.repo.CreateNotification(ctx, repo.CreateNotificationOptions{
		UserID:           sc.UserID,
		TaskID:           input.TaskID,
		NotificationType: input.NotificationType,
		Title:            input.Title,
		Message:          input.Message,
		Priority:         priority,
		Status:           status,
		ScheduledFor:     input.ScheduledFor,
		ActionURL:        input.ActionURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule CreateNotification: %v", err)
		return notification.ScheduleOutput{}, err
	}

	return notification.ScheduleOutput{Notification: created}, nil
}

// List returns the user's notification feed.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input notification.ListInput) (notification.ListOutput, error) {
	notifications, total, err := uc.repo.ListNotifications(ctx, repo.ListNotificationsOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotifications: %v", err)
		return notification.ListOutput{}, err
	}

	return notification.ListOutput{Notifications: notifications, Total: total}, nil
}

// Dismiss marks a notification dismissed at the current time.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) (notification.DismissOutput, error) {
	dismissed, err := uc.repo.DismissNotification(ctx, repo.DismissNotificationOptions{
		ID:          id,
		UserID:      sc.UserID,
		DismissedAt: uc.clock(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dismiss DismissNotification: %v", err)
		return notification.DismissOutput{}, err
	}
	if dismissed.ID == "" {
		return notification.DismissOutput{}, notification.ErrNotificationNotFound
	}

	return notification.DismissOutput{Notification: dismissed}, nil
}
