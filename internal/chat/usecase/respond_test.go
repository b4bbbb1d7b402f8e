package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workpulse/internal/chat"
	habitRepo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
	"workpulse/internal/router"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/log"
)

type mockTaskRepo struct {
	tasks []model.Task
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	return m.tasks, len(m.tasks), nil
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) CreateTasks(ctx context.Context, opts []taskRepo.CreateTaskOptions) ([]model.Task, error) {
	return nil, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) UpdateTaskScore(ctx context.Context, opt taskRepo.UpdateTaskScoreOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) CompleteTask(ctx context.Context, opt taskRepo.CompleteTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, userID, id string) error { return nil }

type mockHabitRepo struct {
	latest model.WorkHabit
}

func (m *mockHabitRepo) UpsertWorkHabit(ctx context.Context, opt habitRepo.UpsertWorkHabitOptions) (model.WorkHabit, error) {
	return model.WorkHabit{}, nil
}

func (m *mockHabitRepo) GetLatestWorkHabit(ctx context.Context, userID string) (model.WorkHabit, error) {
	return m.latest, nil
}

func (m *mockHabitRepo) ListWorkHabits(ctx context.Context, opt habitRepo.ListWorkHabitsOptions) ([]model.WorkHabit, error) {
	return nil, nil
}

func newTestUseCase(tr *mockTaskRepo, hr *mockHabitRepo, now time.Time) *implUseCase {
	return &implUseCase{
		router: router.New(log.NewNop()),
		tasks:  tr,
		habits: hr,
		l:      log.NewNop(),
		clock:  func() time.Time { return now },
	}
}

func respond(t *testing.T, uc *implUseCase, message string) chat.RespondOutput {
	t.Helper()
	out, err := uc.Respond(context.Background(), model.Scope{UserID: "u1"}, chat.RespondInput{Message: message})
	if err != nil {
		t.Fatalf("Respond(%q): %v", message, err)
	}
	return out
}

func TestRespond_Tasks(t *testing.T) {
	tr := &mockTaskRepo{tasks: []model.Task{
		{Title: "Prepare presentation slides", PriorityScore: 90, UrgencyLevel: "critical"},
		{Title: "Review project proposal", PriorityScore: 85, UrgencyLevel: "high"},
		{Title: "Update documentation", PriorityScore: 60, UrgencyLevel: "medium"},
		{Title: "File expenses", PriorityScore: 40, UrgencyLevel: "low"},
	}}
	uc := newTestUseCase(tr, &mockHabitRepo{}, time.Now())

	out := respond(t, uc, "what should I work on, any tasks?")
	if out.Intent != string(router.IntentTasks) {
		t.Fatalf("intent: got %s", out.Intent)
	}
	if !strings.Contains(out.Response, "You currently have 4 pending tasks") {
		t.Errorf("missing count line: %q", out.Response)
	}
	if !strings.Contains(out.Response, "1. Prepare presentation slides (Priority: 90, Urgency: critical)") {
		t.Errorf("missing top task line: %q", out.Response)
	}
	// Only the top 3 are listed even when more were fetched.
	if strings.Contains(out.Response, "File expenses") {
		t.Errorf("fourth task should not be listed: %q", out.Response)
	}
	if !strings.Contains(out.Response, `"Prepare presentation slides" first`) {
		t.Errorf("missing recommendation: %q", out.Response)
	}
}

func TestRespond_TasksEmpty(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, &mockHabitRepo{}, time.Now())

	out := respond(t, uc, "show my todo list")
	want := "Great job! You don't have any pending tasks at the moment. You're all caught up!"
	if out.Response != want {
		t.Errorf("got %q, want %q", out.Response, want)
	}
}

func TestRespond_Productivity(t *testing.T) {
	hr := &mockHabitRepo{latest: model.WorkHabit{
		ID:                "habit-1",
		ProductivityScore: 72,
		CompletedTasks:    4,
		TotalTasks:        6,
	}}
	uc := newTestUseCase(&mockTaskRepo{}, hr, time.Now())

	out := respond(t, uc, "how is my productivity?")
	if out.Intent != string(router.IntentProductivity) {
		t.Fatalf("intent: got %s", out.Intent)
	}
	if !strings.Contains(out.Response, "Your productivity score today is 72%") {
		t.Errorf("missing score: %q", out.Response)
	}
	if !strings.Contains(out.Response, "completed 4 out of 6 tasks") {
		t.Errorf("missing completion: %q", out.Response)
	}
	if strings.Contains(out.Response, "overload") {
		t.Errorf("unexpected overload note: %q", out.Response)
	}
}

func TestRespond_ProductivityWarnings(t *testing.T) {
	hr := &mockHabitRepo{latest: model.WorkHabit{
		ID:                "habit-1",
		ProductivityScore: 35,
		ContextSwitches:   25,
		AvgWorkingHours:   10.5,
		OverloadIndicator: true,
	}}
	uc := newTestUseCase(&mockTaskRepo{}, hr, time.Now())

	out := respond(t, uc, "how am i doing")
	if !strings.Contains(out.Response, "signs of potential overload") {
		t.Errorf("missing overload note: %q", out.Response)
	}
	if !strings.Contains(out.Response, "switched contexts 25 times") {
		t.Errorf("missing switch note: %q", out.Response)
	}
	if !strings.Contains(out.Response, "worked 10.5 hours today") {
		t.Errorf("missing hours note: %q", out.Response)
	}
}

func TestRespond_ProductivityNoData(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, &mockHabitRepo{}, time.Now())

	out := respond(t, uc, "rate my performance")
	if !strings.Contains(out.Response, "I don't have enough data yet") {
		t.Errorf("got %q", out.Response)
	}
}

func TestRespond_Deadlines(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	soon := now.Add(2 * 24 * time.Hour)
	far := now.Add(10 * 24 * time.Hour)
	past := now.Add(-6 * time.Hour)
	tr := &mockTaskRepo{tasks: []model.Task{
		{Title: "Submit report", Deadline: &soon},
		{Title: "Plan offsite", Deadline: &far},
		{Title: "Send invoice", Deadline: &past},
	}}
	uc := newTestUseCase(tr, &mockHabitRepo{}, now)

	out := respond(t, uc, "anything due soon?")
	if out.Intent != string(router.IntentDeadlines) {
		t.Fatalf("intent: got %s", out.Intent)
	}
	if !strings.Contains(out.Response, "You have 2 tasks with upcoming deadlines") {
		t.Errorf("missing count: %q", out.Response)
	}
	if !strings.Contains(out.Response, "Submit report - Due in 2 days") {
		t.Errorf("missing soon task: %q", out.Response)
	}
	if !strings.Contains(out.Response, "Send invoice - Due in overdue") {
		t.Errorf("missing overdue task: %q", out.Response)
	}
	if strings.Contains(out.Response, "Plan offsite") {
		t.Errorf("far deadline should be excluded: %q", out.Response)
	}
}

func TestRespond_DeadlinesNone(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, &mockHabitRepo{}, time.Now())

	out := respond(t, uc, "anything urgent?")
	want := "You don't have any tasks with urgent deadlines in the next 3 days."
	if out.Response != want {
		t.Errorf("got %q, want %q", out.Response, want)
	}
}

func TestRespond_Suggestions(t *testing.T) {
	hr := &mockHabitRepo{latest: model.WorkHabit{
		ID: "habit-1",
		Insights: model.HabitInsights{
			Suggestions: []string{
				"Try time-blocking to reduce context switches",
				"Focus on urgent and important tasks first",
			},
		},
	}}
	uc := newTestUseCase(&mockTaskRepo{}, hr, time.Now())

	out := respond(t, uc, "can you suggest improvements?")
	if out.Intent != string(router.IntentSuggestions) {
		t.Fatalf("intent: got %s", out.Intent)
	}
	if !strings.Contains(out.Response, "1. Try time-blocking to reduce context switches") {
		t.Errorf("missing first suggestion: %q", out.Response)
	}
	if !strings.Contains(out.Response, "2. Focus on urgent and important tasks first") {
		t.Errorf("missing second suggestion: %q", out.Response)
	}
}

func TestRespond_Fallback(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, &mockHabitRepo{}, time.Now())

	out := respond(t, uc, "tell me a joke")
	if out.Intent != string(router.IntentFallback) {
		t.Fatalf("intent: got %s", out.Intent)
	}
	if !strings.Contains(out.Response, `asking about "tell me a joke"`) {
		t.Errorf("fallback should echo the message: %q", out.Response)
	}
}

func TestRespond_EmptyMessage(t *testing.T) {
	uc := newTestUseCase(&mockTaskRepo{}, &mockHabitRepo{}, time.Now())

	_, err := uc.Respond(context.Background(), model.Scope{UserID: "u1"}, chat.RespondInput{Message: "   "})
	if !errors.Is(err, chat.ErrMessageRequired) {
		t.Fatalf("expected ErrMessageRequired, got %v", err)
	}
}
