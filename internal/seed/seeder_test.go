package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	habitRepo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
	notifRepo "workpulse/internal/notification/repository"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

type mockTaskRepo struct {
	tasks []model.Task
}

func (m *mockTaskRepo) CreateTask(_ context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:     fmt.Sprintf("task-%d", len(m.tasks)+1),
		UserID: opt.UserID,
		Title:  opt.Title,
		Status: opt.Status,
	}
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockTaskRepo) CreateTasks(ctx context.Context, opts []taskRepo.CreateTaskOptions) ([]model.Task, error) {
	out := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		t, _ := m.CreateTask(ctx, opt)
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTaskRepo) GetOneTask(_ context.Context, _ taskRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(_ context.Context, _ taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	return m.tasks, len(m.tasks), nil
}

func (m *mockTaskRepo) UpdateTaskScore(_ context.Context, _ taskRepo.UpdateTaskScoreOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) CompleteTask(_ context.Context, _ taskRepo.CompleteTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) DeleteTask(_ context.Context, _, _ string) error { return nil }

func (m *mockTaskRepo) CreateExplanation(_ context.Context, _ taskRepo.CreateExplanationOptions) (model.AIExplanation, error) {
	return model.AIExplanation{}, nil
}

func (m *mockTaskRepo) ListExplanations(_ context.Context, _ taskRepo.ListExplanationsOptions) ([]model.AIExplanation, error) {
	return nil, nil
}

type mockNotifRepo struct {
	created []notifRepo.CreateNotificationOptions
}

func (m *mockNotifRepo) CreateNotification(_ context.Context, opt notifRepo.CreateNotificationOptions) (model.Notification, error) {
	m.created = append(m.created, opt)
	return model.Notification{ID: "notif-1", Title: opt.Title, Status: opt.Status}, nil
}

func (m *mockNotifRepo) ListNotifications(_ context.Context, _ notifRepo.ListNotificationsOptions) ([]model.Notification, int, error) {
	return nil, 0, nil
}

func (m *mockNotifRepo) DismissNotification(_ context.Context, _ notifRepo.DismissNotificationOptions) (model.Notification, error) {
	return model.Notification{}, nil
}

type mockHabitRepo struct {
	upserts []habitRepo.UpsertWorkHabitOptions
}

func (m *mockHabitRepo) UpsertWorkHabit(_ context.Context, opt habitRepo.UpsertWorkHabitOptions) (model.WorkHabit, error) {
	m.upserts = append(m.upserts, opt)
	return model.WorkHabit{ID: "habit-1", UserID: opt.UserID, AnalysisDate: opt.AnalysisDate}, nil
}

func (m *mockHabitRepo) GetLatestWorkHabit(_ context.Context, _ string) (model.WorkHabit, error) {
	return model.WorkHabit{}, nil
}

func (m *mockHabitRepo) ListWorkHabits(_ context.Context, _ habitRepo.ListWorkHabitsOptions) ([]model.WorkHabit, error) {
	return nil, nil
}

func newTestSeeder(tasks *mockTaskRepo, notifs *mockNotifRepo, habits *mockHabitRepo, now time.Time) *Seeder {
	parser, _ := datemath.NewParser("UTC")
	return &Seeder{
		tasks:         tasks,
		notifications: notifs,
		habits:        habits,
		dateMath:      parser,
		l:             log.NewNop(),
		clock:         func() time.Time { return now },
	}
}

func TestSeed(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	tasks := &mockTaskRepo{}
	notifs := &mockNotifRepo{}
	habits := &mockHabitRepo{}
	s := newTestSeeder(tasks, notifs, habits, now)
	sc := model.Scope{UserID: "user-1"}

	output, err := s.Seed(context.Background(), sc)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if output.AlreadySeeded {
		t.Fatal("expected a fresh seed, got AlreadySeeded")
	}
	if len(output.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(output.Tasks))
	}
	wantTitles := []string{"Review project proposal", "Prepare presentation slides", "Update documentation"}
	for i, want := range wantTitles {
		if output.Tasks[i].Title != want {
			t.Errorf("task %d title = %q, want %q", i, output.Tasks[i].Title, want)
		}
	}

	if len(notifs.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs.created))
	}
	n := notifs.created[0]
	if n.Title != "Upcoming Meeting" || n.Priority != "medium" || n.Status != model.NotificationPending {
		t.Errorf("unexpected notification: %+v", n)
	}

	if len(habits.upserts) != 1 {
		t.Fatalf("expected 1 habit upsert, got %d", len(habits.upserts))
	}
	h := habits.upserts[0]
	if h.AnalysisDate != "2026-03-10" {
		t.Errorf("analysis date = %q, want 2026-03-10", h.AnalysisDate)
	}
	if h.TotalTasks != 12 || h.CompletedTasks != 9 || h.ProductivityScore != 85 {
		t.Errorf("unexpected habit rollup: %+v", h)
	}
	if len(h.Insights.Suggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d", len(h.Insights.Suggestions))
	}
}

func TestSeed_AlreadySeeded(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	tasks := &mockTaskRepo{tasks: []model.Task{{ID: "task-1", UserID: "user-1", Title: "Existing"}}}
	notifs := &mockNotifRepo{}
	habits := &mockHabitRepo{}
	s := newTestSeeder(tasks, notifs, habits, now)

	output, err := s.Seed(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !output.AlreadySeeded {
		t.Fatal("expected AlreadySeeded")
	}
	if len(notifs.created) != 0 || len(habits.upserts) != 0 {
		t.Fatal("seed should not write when the user already has tasks")
	}
}
