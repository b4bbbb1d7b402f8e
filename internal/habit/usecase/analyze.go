package usecase

import (
	"context"

	activityRepo "workpulse/internal/activity/repository"
	"workpulse/internal/habit"
	repo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
	taskRepo "workpulse/internal/task/repository"
)

// dayMetrics holds the raw numbers extracted from one day of data.
type dayMetrics struct {
	totalTasks        int
	completedTasks    int
	completionRate    float64
	contextSwitches   int
	workingHours      float64
	ignoredPriorities int
}

// Analyze rolls up one calendar day of tasks and activities into a work
// habit row. Re-analyzing the same day overwrites the previous result.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input habit.AnalyzeInput) (habit.AnalyzeOutput, error) {
	now := uc.clock()
	from, to, err := uc.dateMath.DayWindow(input.Date, now)
	if err != nil {
		return habit.AnalyzeOutput{}, habit.ErrInvalidDate
	}
	analysisDate := uc.dateMath.FormatDay(from)

	// Tasks created in the window.
	created, _, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:      sc.UserID,
		CreatedFrom: from,
		CreatedTo:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze ListTasks created: %v", err)
		return habit.AnalyzeOutput{}, err
	}

	// Tasks completed in the window, regardless of when they were created.
	completed, _, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:        sc.UserID,
		Status:        model.TaskStatusCompleted,
		CompletedFrom: from,
		CompletedTo:   to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze ListTasks completed: %v", err)
		return habit.AnalyzeOutput{}, err
	}

	activities, _, err := uc.activities.ListActivities(ctx, activityRepo.ListActivitiesOptions{
		UserID: sc.UserID,
		From:   from,
		To:     to,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze ListActivities: %v", err)
		return habit.AnalyzeOutput{}, err
	}

	metrics := computeMetrics(created, completed, activities)
	score := productivityScore(metrics)
	overload := metrics.workingHours > 10 || metrics.contextSwitches > 40 || metrics.ignoredPriorities > 5
	insights := buildInsights(metrics)

	stored, err := uc.repo.UpsertWorkHabit(ctx, repo.UpsertWorkHabitOptions{
		UserID:            sc.UserID,
		AnalysisDate:      analysisDate,
		TotalTasks:        metrics.totalTasks,
		CompletedTasks:    metrics.completedTasks,
		ProductivityScore: score,
		ContextSwitches:   metrics.contextSwitches,
		AvgWorkingHours:   metrics.workingHours,
		OverloadIndicator: overload,
		IgnoredPriorities: metrics.ignoredPriorities,
		Insights:          insights,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analyze UpsertWorkHabit: %v", err)
		return habit.AnalyzeOutput{}, err
	}

	return habit.AnalyzeOutput{Habit: stored}, nil
}

func computeMetrics(created, completed []model.Task, activities []model.Activity) dayMetrics {
	m := dayMetrics{
		totalTasks:     len(created),
		completedTasks: len(completed),
	}
	if m.totalTasks > 0 {
		m.completionRate = float64(m.completedTasks) / float64(m.totalTasks) * 100
	}

	for _, a := range activities {
		if a.ActivityType == model.ActivityTaskSwitched {
			m.contextSwitches++
		}
		m.workingHours += float64(a.DurationSeconds) / 3600
	}

	// Completions counted here may predate the window, so the difference
	// can go negative. That is kept as-is: it signals a backlog-clearing day.
	highCreated := countHighPriority(created)
	highCompleted := countHighPriority(completed)
	m.ignoredPriorities = highCreated - highCompleted

	return m
}

func countHighPriority(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.UrgencyLevel == "high" || t.UrgencyLevel == "critical" {
			n++
		}
	}
	return n
}

func productivityScore(m dayMetrics) int {
	score := 50

	switch {
	case m.completionRate >= 80:
		score += 30
	case m.completionRate >= 60:
		score += 20
	case m.completionRate >= 40:
		score += 10
	}

	if m.contextSwitches < 10 {
		score += 10
	} else if m.contextSwitches > 30 {
		score -= 10
	}

	if m.workingHours >= 6 && m.workingHours <= 9 {
		score += 10
	} else if m.workingHours > 10 {
		score -= 15
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func buildInsights(m dayMetrics) model.HabitInsights {
	insights := model.HabitInsights{
		Patterns:    []string{},
		Suggestions: []string{},
		Concerns:    []string{},
	}

	switch {
	case m.completionRate >= 80:
		insights.Summary = "Excellent productivity today! You completed most of your tasks."
		insights.Patterns = append(insights.Patterns, "High task completion rate")
	case m.completionRate >= 60:
		insights.Summary = "Good productivity today with room for improvement."
		insights.Patterns = append(insights.Patterns, "Moderate task completion rate")
	default:
		insights.Summary = "Focus and prioritization could be improved."
		insights.Patterns = append(insights.Patterns, "Low task completion rate")
		insights.Concerns = append(insights.Concerns, "Many tasks remain incomplete")
	}

	if m.contextSwitches > 30 {
		insights.Concerns = append(insights.Concerns, "Frequent context switching detected")
		insights.Suggestions = append(insights.Suggestions, "Try time-blocking to reduce context switches")
	}

	if m.workingHours > 10 {
		insights.Concerns = append(insights.Concerns, "Long working hours detected")
		insights.Suggestions = append(insights.Suggestions, "Consider taking regular breaks to avoid burnout")
	}

	if m.ignoredPriorities > 3 {
		insights.Concerns = append(insights.Concerns, "High-priority tasks being ignored")
		insights.Suggestions = append(insights.Suggestions, "Focus on urgent and important tasks first")
	}

	if m.workingHours >= 6 && m.workingHours <= 8 && m.contextSwitches < 15 {
		insights.Patterns = append(insights.Patterns, "Healthy work patterns observed")
		insights.Suggestions = append(insights.Suggestions, "Keep maintaining your current work rhythm")
	}

	return insights
}
