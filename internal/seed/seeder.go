package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	habitRepo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
	notifRepo "workpulse/internal/notification/repository"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// Output reports what the bootstrap created.
type Output struct {
	Tasks         []model.Task       `json:"tasks"`
	Notification  model.Notification `json:"notification"`
	Habit         model.WorkHabit    `json:"habit"`
	AlreadySeeded bool               `json:"already_seeded"`
}

// Seeder populates a fresh account with demo tasks, a notification and a
// sample habit rollup so the dashboard has something to show.
type Seeder struct {
	tasks         taskRepo.Repository
	notifications notifRepo.Repository
	habits        habitRepo.Repository
	dateMath      *datemath.Parser
	l             log.Logger
	clock         func() time.Time
}

func New(tasks taskRepo.Repository, notifications notifRepo.Repository, habits habitRepo.Repository, dateMath *datemath.Parser, l log.Logger) *Seeder {
	return &Seeder{
		tasks:         tasks,
		notifications: notifications,
		habits:        habits,
		dateMath:      dateMath,
		l:             l,
		clock:         time.Now,
	}
}

// Seed inserts the demo data set. A user who already has tasks is left
// untouched so repeat calls cannot duplicate the samples.
func (s *Seeder) Seed(ctx context.Context, sc model.Scope) (Output, error) {
	existing, _, err := s.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{UserID: sc.UserID, Limit: 1})
	if err != nil {
		s.l.Errorf(ctx, "seed.Seed ListTasks: %v", err)
		return Output{}, err
	}
	if len(existing) > 0 {
		return Output{AlreadySeeded: true}, nil
	}

	now := s.clock()
	workspaceID := uuid.NewString()
	inOneDay := now.Add(1 * 24 * time.Hour)
	inTwoDays := now.Add(2 * 24 * time.Hour)
	inSevenDays := now.Add(7 * 24 * time.Hour)

	tasks, err := s.tasks.CreateTasks(ctx, []taskRepo.CreateTaskOptions{
		{
			UserID:        sc.UserID,
			WorkspaceID:   workspaceID,
			Title:         "Review project proposal",
			Description:   "Review the Q1 project proposal and provide feedback",
			Status:        model.TaskStatusPending,
			PriorityScore: 85,
			UrgencyLevel:  "high",
			Deadline:      &inTwoDays,
			IsAIGenerated: true,
			SourceType:    model.SourceEmail,
		},
		{
			UserID:               sc.UserID,
			WorkspaceID:          workspaceID,
			Title:                "Prepare presentation slides",
			Description:          "Create slides for the upcoming client meeting",
			Status:               model.TaskStatusInProgress,
			PriorityScore:        90,
			UrgencyLevel:         "critical",
			Deadline:             &inOneDay,
			CompletionPercentage: 45,
			IsAIGenerated:        true,
			SourceType:           model.SourceMeeting,
		},
		{
			UserID:        sc.UserID,
			WorkspaceID:   workspaceID,
			Title:         "Update documentation",
			Description:   "Update the API documentation with new endpoints",
			Status:        model.TaskStatusPending,
			PriorityScore: 60,
			UrgencyLevel:  "medium",
			Deadline:      &inSevenDays,
			IsAIGenerated: true,
			SourceType:    model.SourceDocument,
		},
	})
	if err != nil {
		s.l.Errorf(ctx, "seed.Seed CreateTasks: %v", err)
		return Output{}, err
	}

	notification, err := s.notifications.CreateNotification(ctx, notifRepo.CreateNotificationOptions{
		UserID:           sc.UserID,
		NotificationType: "type2_reminder",
		Title:            "Upcoming Meeting",
		Message:          "You have a team meeting in 30 minutes",
		Priority:         "medium",
		Status:           model.NotificationPending,
	})
	if err != nil {
		s.l.Errorf(ctx, "seed.Seed CreateNotification: %v", err)
		return Output{}, err
	}

	habit, err := s.habits.UpsertWorkHabit(ctx, habitRepo.UpsertWorkHabitOptions{
		UserID:            sc.UserID,
		AnalysisDate:      s.dateMath.FormatDay(now),
		TotalTasks:        12,
		CompletedTasks:    9,
		ProductivityScore: 85,
		ContextSwitches:   15,
		AvgWorkingHours:   7.5,
		OverloadIndicator: false,
		IgnoredPriorities: 2,
		Insights: model.HabitInsights{
			Summary: "Great productivity today! You completed most of your high-priority tasks.",
			Suggestions: []string{
				"Consider taking breaks between tasks",
				"Focus time between 9-11 AM is optimal",
			},
		},
	})
	if err != nil {
		s.l.Errorf(ctx, "seed.Seed UpsertWorkHabit: %v", err)
		return Output{}, err
	}

	return Output{Tasks: tasks, Notification: notification, Habit: habit}, nil
}
