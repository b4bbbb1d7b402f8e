package usecase

import (
	"context"

	"workpulse/internal/habit"
	repo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
)

// Latest returns the most recent rollup for the user, if one exists.
func (uc *implUseCase) Latest(ctx context.Context, sc model.Scope) (habit.LatestOutput, error) {
	stored, err := uc.repo.GetLatestWorkHabit(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Latest GetLatestWorkHabit: %v", err)
		return habit.LatestOutput{}, err
	}
	return habit.LatestOutput{Habit: stored, Found: stored.ID != ""}, nil
}

// History returns past rollups, newest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input habit.HistoryInput) (habit.HistoryOutput, error) {
	habits, err := uc.repo.ListWorkHabits(ctx, repo.ListWorkHabitsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListWorkHabits: %v", err)
		return habit.HistoryOutput{}, err
	}
	return habit.HistoryOutput{Habits: habits}, nil
}
