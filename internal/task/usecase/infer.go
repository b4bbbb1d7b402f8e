package usecase

import (
	"context"
	"fmt"
	"time"

	"workpulse/internal/model"
	"workpulse/internal/task"
	repo "workpulse/internal/task/repository"
	"workpulse/pkg/scoring"
)

// InferFromActivities derives tasks from a batch of observed activities.
// Activity types without an inference rule are skipped; the whole batch is
// persisted in a single transaction.
func (uc *implUseCase) InferFromActivities(ctx context.Context, sc model.Scope, input task.InferInput) (task.InferOutput, error) {
	if len(input.Activities) == 0 {
		return task.InferOutput{}, task.ErrEmptyBatch
	}

	now := uc.clock()
	var opts []repo.CreateTaskOptions
	for _, event := range input.Activities {
		opt, ok := uc.inferOne(ctx, event, now)
		if !ok {
			continue
		}
		opt.UserID = sc.UserID
		opts = append(opts, opt)
	}

	if len(opts) == 0 {
		return task.InferOutput{Message: "No tasks inferred from activities"}, nil
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.InferFromActivities CreateTasks: %v", err)
		return task.InferOutput{}, err
	}

	return task.InferOutput{Tasks: tasks, Count: len(tasks)}, nil
}

// inferOne maps a single activity to task creation options. The second
// return value is false when the activity type carries no inference rule.
func (uc *implUseCase) inferOne(ctx context.Context, event task.ActivityEvent, now time.Time) (repo.CreateTaskOptions, bool) {
	data := event.ActivityData
	opt := repo.CreateTaskOptions{
		AppID:           event.AppID,
		Status:          model.TaskStatusPending,
		IsAIGenerated:   true,
		SourceType:      event.ActivityType,
		SourceReference: stringField(data, "id", ""),
	}

	switch event.ActivityType {
	case model.ActivityEmailReceived:
		opt.Title = fmt.Sprintf("Follow up on: %s", stringField(data, "subject", "Email"))
		opt.Description = fmt.Sprintf("Respond to email from %s", stringField(data, "sender", "sender"))
		if boolField(data, "urgent") {
			opt.UrgencyLevel = string(scoring.UrgencyHigh)
			opt.PriorityScore = 80
		} else {
			opt.UrgencyLevel = string(scoring.UrgencyMedium)
			opt.PriorityScore = 60
		}
	case model.ActivityMeetingScheduled:
		opt.Title = fmt.Sprintf("Prepare for: %s", stringField(data, "title", "Meeting"))
		opt.Description = fmt.Sprintf("Meeting scheduled at %s", stringField(data, "time", "TBD"))
		opt.UrgencyLevel = string(scoring.UrgencyHigh)
		opt.PriorityScore = 85
	case model.ActivityDocumentEdited:
		opt.Title = fmt.Sprintf("Complete: %s", stringField(data, "document_name", "Document"))
		opt.Description = "Continue working on document"
		opt.UrgencyLevel = string(scoring.UrgencyMedium)
		opt.PriorityScore = 70
	case model.ActivityTaskMentioned:
		opt.Title = stringField(data, "task_name", "New task")
		opt.Description = stringField(data, "description", "Task mentioned in conversation")
		opt.UrgencyLevel = stringField(data, "priority", string(scoring.UrgencyMedium))
		opt.PriorityScore = 65
	default:
		return repo.CreateTaskOptions{}, false
	}

	if raw := stringField(data, "deadline", ""); raw != "" {
		deadline, err := uc.dateMath.ParseDeadline(raw, now)
		if err != nil {
			uc.l.Warnf(ctx, "uc.inferOne deadline %q: %v", raw, err)
		} else {
			opt.Deadline = &deadline
		}
	}

	return opt, true
}

func stringField(data map[string]any, key, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolField(data map[string]any, key string) bool {
	v, ok := data[key].(bool)
	return ok && v
}
