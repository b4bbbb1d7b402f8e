package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workpulse/internal/model"
	"workpulse/internal/notification"
	repo "workpulse/internal/notification/repository"
	"workpulse/pkg/log"
)

type mockRepo struct {
	created []repo.CreateNotificationOptions
	stored  map[string]model.Notification
}

func (m *mockRepo) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	m.created = append(m.created, opt)
	return model.Notification{
		ID:           "n-1",
		UserID:       opt.UserID,
		Title:        opt.Title,
		Priority:     opt.Priority,
		Status:       opt.Status,
		ScheduledFor: opt.ScheduledFor,
	}, nil
}

func (m *mockRepo) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, int, error) {
	return nil, 0, nil
}

func (m *mockRepo) DismissNotification(ctx context.Context, opt repo.DismissNotificationOptions) (model.Notification, error) {
	n, ok := m.stored[opt.ID]
	if !ok {
		return model.Notification{}, nil
	}
	n.Status = model.NotificationDismissed
	dismissedAt := opt.DismissedAt
	n.DismissedAt = &dismissedAt
	return n, nil
}

func newTestUseCase(r *mockRepo, now time.Time) *implUseCase {
	return &implUseCase{
		repo:  r,
		l:     log.NewNop(),
		clock: func() time.Time { return now },
	}
}

func TestSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)
	sc := model.Scope{UserID: "u1"}

	// Immediate popup: pending, default priority.
	out, err := uc.Schedule(context.Background(), sc, notification.ScheduleInput{
		Title:   "Upcoming Meeting",
		Message: "You have a team meeting in 30 minutes",
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if out.Notification.Status != model.NotificationPending {
		t.Errorf("status: got %s, want pending", out.Notification.Status)
	}
	if out.Notification.Priority != "medium" {
		t.Errorf("priority: got %q, want medium", out.Notification.Priority)
	}

	// Future popup: scheduled.
	later := now.Add(2 * time.Hour)
	out, err = uc.Schedule(context.Background(), sc, notification.ScheduleInput{
		Title:        "Wrap up for the day",
		ScheduledFor: &later,
	})
	if err != nil {
		t.Fatalf("Schedule future: %v", err)
	}
	if out.Notification.Status != model.NotificationScheduled {
		t.Errorf("future status: got %s, want scheduled", out.Notification.Status)
	}

	_, err = uc.Schedule(context.Background(), sc, notification.ScheduleInput{})
	if !errors.Is(err, notification.ErrTitleRequired) {
		t.Errorf("missing title: got %v", err)
	}
}

func TestDismiss(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{stored: map[string]model.Notification{
		"n-1": {ID: "n-1", UserID: "u1", Status: model.NotificationPending},
	}}
	uc := newTestUseCase(r, now)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.Dismiss(context.Background(), sc, "n-1")
	if err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	if out.Notification.Status != model.NotificationDismissed {
		t.Errorf("status: got %s, want dismissed", out.Notification.Status)
	}
	if out.Notification.DismissedAt == nil || !out.Notification.DismissedAt.Equal(now) {
		t.Errorf("dismissed at: got %v, want %v", out.Notification.DismissedAt, now)
	}

	_, err = uc.Dismiss(context.Background(), sc, "missing")
	if !errors.Is(err, notification.ErrNotificationNotFound) {
		t.Errorf("missing id: got %v", err)
	}
}
