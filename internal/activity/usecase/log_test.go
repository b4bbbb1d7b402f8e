package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workpulse/internal/activity"
	repo "workpulse/internal/activity/repository"
	"workpulse/internal/model"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

type mockRepo struct {
	created []repo.CreateActivityOptions
	listed  []repo.ListActivitiesOptions
	stored  []model.Activity
}

func (m *mockRepo) CreateActivities(ctx context.Context, opts []repo.CreateActivityOptions) ([]model.Activity, error) {
	m.created = append(m.created, opts...)
	out := make([]model.Activity, len(opts))
	for i, opt := range opts {
		out[i] = model.Activity{
			ID:              "act-1",
			UserID:          opt.UserID,
			AppID:           opt.AppID,
			ActivityType:    opt.ActivityType,
			ActivityData:    opt.ActivityData,
			DurationSeconds: opt.DurationSeconds,
			Timestamp:       opt.Timestamp,
		}
	}
	return out, nil
}

func (m *mockRepo) ListActivities(ctx context.Context, opt repo.ListActivitiesOptions) ([]model.Activity, int, error) {
	m.listed = append(m.listed, opt)
	return m.stored, len(m.stored), nil
}

func newTestUseCase(r *mockRepo, now time.Time) *implUseCase {
	parser, _ := datemath.NewParser("UTC")
	return &implUseCase{
		repo:     r,
		dateMath: parser,
		l:        log.NewNop(),
		clock:    func() time.Time { return now },
	}
}

func TestLog(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	stamped := now.Add(-time.Hour)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)

	out, err := uc.Log(context.Background(), model.Scope{UserID: "u1"}, activity.LogInput{
		Entries: []activity.LogEntry{
			{ActivityType: model.ActivityTaskSwitched, DurationSeconds: 300, Timestamp: stamped},
			{ActivityType: model.ActivityEmailReceived, AppID: "gmail"},
		},
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("expected 2 activities, got %d", out.Count)
	}
	if !r.created[0].Timestamp.Equal(stamped) {
		t.Errorf("explicit timestamp not kept: %v", r.created[0].Timestamp)
	}
	if !r.created[1].Timestamp.Equal(now) {
		t.Errorf("missing timestamp not defaulted to now: %v", r.created[1].Timestamp)
	}
	if r.created[0].UserID != "u1" || r.created[1].UserID != "u1" {
		t.Errorf("entries not scoped to user: %+v", r.created)
	}
}

func TestLog_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, time.Now())
	sc := model.Scope{UserID: "u1"}

	_, err := uc.Log(context.Background(), sc, activity.LogInput{})
	if !errors.Is(err, activity.ErrEmptyBatch) {
		t.Errorf("empty batch: got %v", err)
	}

	_, err = uc.Log(context.Background(), sc, activity.LogInput{
		Entries: []activity.LogEntry{{AppID: "gmail"}},
	})
	if !errors.Is(err, activity.ErrTypeRequired) {
		t.Errorf("missing type: got %v", err)
	}
}

func TestList_DayWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	r := &mockRepo{}
	uc := newTestUseCase(r, now)

	_, err := uc.List(context.Background(), model.Scope{UserID: "u1"}, activity.ListInput{
		Date: "2026-03-09",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	opt := r.listed[0]
	if opt.From.Day() != 9 || opt.From.Hour() != 0 {
		t.Errorf("window start: %v", opt.From)
	}
	if opt.To.Day() != 9 || opt.To.Hour() != 23 || opt.To.Minute() != 59 {
		t.Errorf("window end: %v", opt.To)
	}
}
