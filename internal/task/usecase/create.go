package usecase

import (
	"context"

	"workpulse/internal/model"
	"workpulse/internal/task"
	repo "workpulse/internal/task/repository"
	"workpulse/pkg/scoring"
)

// Create inserts a manually entered task, scoring it from the keywords in
// its description combined with deadline pressure. The title never feeds
// the keyword analysis.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if input.Title == "" {
		return task.CreateOutput{}, task.ErrTitleRequired
	}
	if input.Deadline.IsZero() {
		return task.CreateOutput{}, task.ErrDeadlineRequired
	}

	now := uc.clock()
	kw := scoring.AnalyzeDescription(input.Description, input.Deadline, now)

	deadline := input.Deadline
	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:        sc.UserID,
		WorkspaceID:   input.WorkspaceID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        model.TaskStatusPending,
		PriorityScore: (kw.Complexity + kw.Importance) * 10,
		UrgencyLevel:  string(kw.Urgency),
		Deadline:      &deadline,
		IsAIGenerated: true,
		SourceType:    model.SourceManualAI,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{
		Task:       created,
		Complexity: kw.Complexity,
		Importance: kw.Importance,
	}, nil
}
