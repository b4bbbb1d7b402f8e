package usecase

import (
	"context"
	"fmt"

	"workpulse/internal/model"
	"workpulse/internal/task"
	repo "workpulse/internal/task/repository"
	"workpulse/pkg/scoring"
)

// Score recomputes the priority score of every open task (or a single task
// when input.TaskID is set), persists the new scores and records an
// explanation row per task.
func (uc *implUseCase) Score(ctx context.Context, sc model.Scope, input task.ScoreInput) (task.ScoreOutput, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		ID:       input.TaskID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusInProgress},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Score ListTasks: %v", err)
		return task.ScoreOutput{}, err
	}

	now := uc.clock()
	scored := make([]task.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		result := scoring.ClassifyDeadline(t.Deadline, now)
		score := result.Score

		// Source and status bonuses on top of the deadline base.
		if t.SourceType == model.SourceEmail && t.UrgencyLevel == string(scoring.UrgencyHigh) {
			score = min(100, score+10)
		}
		if t.SourceType == model.SourceMeeting {
			score = min(100, score+15)
		}
		if t.Status == model.TaskStatusInProgress {
			score = min(100, score+5)
		}

		explanation := uc.buildExplanation(t, result, score)

		if _, err := uc.repo.UpdateTaskScore(ctx, repo.UpdateTaskScoreOptions{
			ID:            t.ID,
			UserID:        sc.UserID,
			PriorityScore: score,
			UrgencyLevel:  string(result.Urgency),
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Score UpdateTaskScore: %v", err)
			return task.ScoreOutput{}, err
		}

		if _, err := uc.repo.CreateExplanation(ctx, repo.CreateExplanationOptions{
			TaskID:          t.ID,
			UserID:          sc.UserID,
			ExplanationText: explanation,
			Factors: map[string]any{
				"priority_score": score,
				"urgency_level":  string(result.Urgency),
			},
		}); err != nil {
			uc.l.Errorf(ctx, "uc.Score CreateExplanation: %v", err)
			return task.ScoreOutput{}, err
		}

		scored = append(scored, task.ScoredTask{
			TaskID:        t.ID,
			PriorityScore: score,
			UrgencyLevel:  string(result.Urgency),
			Explanation:   explanation,
		})
	}

	return task.ScoreOutput{Tasks: scored, Count: len(scored)}, nil
}

func (uc *implUseCase) buildExplanation(t model.Task, result scoring.DeadlineResult, score int) string {
	deadlinePart := "no deadline"
	if result.HasDeadline {
		deadlinePart = fmt.Sprintf("deadline in %d days", result.DaysUntil)
	}
	source := t.SourceType
	if source == "" {
		source = "unknown"
	}
	return fmt.Sprintf("Priority calculated based on: %s, source: %s, current status: %s",
		deadlinePart, source, t.Status)
}
