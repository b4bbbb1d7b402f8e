package usecase

import (
	"context"

	"workpulse/internal/activity"
	repo "workpulse/internal/activity/repository"
	"workpulse/internal/model"
)

// Log appends a batch of activity observations to the log. Entries without
// a timestamp are stamped with the current time.
func (uc *implUseCase) Log(ctx context.Context, sc model.Scope, input activity.LogInput) (activity.LogOutput, error) {
	if len(input.Entries) == 0 {
		return activity.LogOutput{}, activity.ErrEmptyBatch
	}

	now := uc.clock()
	opts := make([]repo.CreateActivityOptions, 0, len(input.Entries))
	for _, entry := range input.Entries {
		if entry.ActivityType == "" {
			return activity.LogOutput{}, activity.ErrTypeRequired
		}
		ts := entry.Timestamp
		if ts.IsZero() {
			ts = now
		}
		opts = append(opts, repo.CreateActivityOptions{
			UserID:          sc.UserID,
			AppID:           entry.AppID,
			ActivityType:    entry.ActivityType,
			ActivityData:    entry.ActivityData,
			DurationSeconds: entry.DurationSeconds,
			Timestamp:       ts,
		})
	}

	activities, err := uc.repo.CreateActivities(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Log CreateActivities: %v", err)
		return activity.LogOutput{}, err
	}

	return activity.LogOutput{Activities: activities, Count: len(activities)}, nil
}

// List reads back the activity log, optionally filtered to a single day.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input activity.ListInput) (activity.ListOutput, error) {
	opt := repo.ListActivitiesOptions{
		UserID: sc.UserID,
		Type:   input.Type,
		Limit:  input.Limit,
	}
	if input.Date != "" {
		from, to, err := uc.dateMath.DayWindow(input.Date, uc.clock())
		if err != nil {
			return activity.ListOutput{}, err
		}
		opt.From, opt.To = from, to
	}

	activities, total, err := uc.repo.ListActivities(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListActivities: %v", err)
		return activity.ListOutput{}, err
	}

	return activity.ListOutput{Activities: activities, Total: total}, nil
}
