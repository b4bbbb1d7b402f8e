package usecase

import (
	"context"
	"fmt"
	"time"

	"workpulse/internal/model"
	repo "workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// mockRepo is an in-memory task repository recording every write.
type mockRepo struct {
	tasks        []model.Task
	updates      []repo.UpdateTaskScoreOptions
	explanations []repo.CreateExplanationOptions
	created      []repo.CreateTaskOptions

	listErr   error
	insertErr error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.insertErr != nil {
		return model.Task{}, m.insertErr
	}
	m.created = append(m.created, opt)
	t := taskFromOptions(opt, len(m.tasks)+1)
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *mockRepo) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	var out []model.Task
	for _, opt := range opts {
		m.created = append(m.created, opt)
		t := taskFromOptions(opt, len(m.tasks)+1)
		m.tasks = append(m.tasks, t)
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if len(opt.Statuses) > 0 && !containsStatus(opt.Statuses, t.Status) {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *mockRepo) UpdateTaskScore(ctx context.Context, opt repo.UpdateTaskScoreOptions) (model.Task, error) {
	m.updates = append(m.updates, opt)
	for i := range m.tasks {
		if m.tasks[i].ID == opt.ID {
			m.tasks[i].PriorityScore = opt.PriorityScore
			m.tasks[i].UrgencyLevel = opt.UrgencyLevel
			return m.tasks[i], nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID == opt.ID && m.tasks[i].UserID == opt.UserID {
			m.tasks[i].Status = model.TaskStatusCompleted
			m.tasks[i].CompletionPercentage = 100
			completedAt := opt.CompletedAt
			m.tasks[i].CompletedAt = &completedAt
			return m.tasks[i], nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, userID, id string) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id && m.tasks[i].UserID == userID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepo) CreateExplanation(ctx context.Context, opt repo.CreateExplanationOptions) (model.AIExplanation, error) {
	m.explanations = append(m.explanations, opt)
	return model.AIExplanation{EntityType: "task", EntityID: opt.TaskID, Explanation: opt.ExplanationText}, nil
}

func (m *mockRepo) ListExplanations(ctx context.Context, opt repo.ListExplanationsOptions) ([]model.AIExplanation, error) {
	return nil, nil
}

func taskFromOptions(opt repo.CreateTaskOptions, seq int) model.Task {
	return model.Task{
		ID:                   fmt.Sprintf("task-%d", seq),
		UserID:               opt.UserID,
		WorkspaceID:          opt.WorkspaceID,
		AppID:                opt.AppID,
		Title:                opt.Title,
		Description:          opt.Description,
		Status:               opt.Status,
		PriorityScore:        opt.PriorityScore,
		UrgencyLevel:         opt.UrgencyLevel,
		Deadline:             opt.Deadline,
		CompletionPercentage: opt.CompletionPercentage,
		IsAIGenerated:        opt.IsAIGenerated,
		SourceType:           opt.SourceType,
		SourceReference:      opt.SourceReference,
	}
}

func containsStatus(statuses []model.TaskStatus, status model.TaskStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// newTestUseCase builds a usecase with a fixed clock and a no-op logger.
func newTestUseCase(r *mockRepo, now time.Time) *implUseCase {
	parser, _ := datemath.NewParser("UTC")
	return &implUseCase{
		repo:     r,
		dateMath: parser,
		l:        log.NewNop(),
		clock:    func() time.Time { return now },
	}
}
