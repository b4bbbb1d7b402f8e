package usecase

import (
	"context"

	"workpulse/internal/model"
	"workpulse/internal/task"
	repo "workpulse/internal/task/repository"
)

// sortColumns whitelists the user-facing sort keys against SQL order clauses.
// "priority" ranks by urgency tier, "complexity" by raw score; both break
// ties on the soonest deadline, matching the dashboard sidebar.
var sortColumns = map[string]string{
	"priority":   "CASE urgency_level WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 99 END ASC, deadline ASC NULLS LAST",
	"complexity": "priority_score DESC, deadline ASC NULLS LAST",
	"deadline":   "deadline ASC NULLS LAST",
	"created":    "created_at DESC",
}

// List returns a paginated list of the user's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	orderBy := sortColumns[input.SortBy]

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		Status:  model.TaskStatus(input.Status),
		OrderBy: orderBy,
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Complete marks a task completed at the current time.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.CompleteOutput, error) {
	completed, err := uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
		ID:          id,
		UserID:      sc.UserID,
		CompletedAt: uc.clock(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
		return task.CompleteOutput{}, err
	}
	if completed.ID == "" {
		return task.CompleteOutput{}, task.ErrTaskNotFound
	}
	return task.CompleteOutput{Task: completed}, nil
}

// Delete removes a task owned by the scoped user.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, sc.UserID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
