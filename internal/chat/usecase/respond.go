package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workpulse/internal/chat"
	"workpulse/internal/model"
	"workpulse/internal/router"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
)

const topTaskLimit = 5

// Respond classifies the message and renders a reply from the user's open
// tasks and latest habit rollup. The assistant is stateless: nothing about
// the conversation is stored between calls.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.RespondOutput{}, chat.ErrMessageRequired
	}

	now := uc.clock()
	intent := uc.router.Classify(ctx, input.Message)

	tasks, _, err := uc.tasks.ListTasks(ctx, taskRepo.ListTasksOptions{
		UserID:   sc.UserID,
		Statuses: []model.TaskStatus{model.TaskStatusPending, model.TaskStatusInProgress},
		OrderBy:  "priority_score DESC",
		Limit:    topTaskLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Respond ListTasks: %v", err)
		return chat.RespondOutput{}, err
	}

	habit, err := uc.habits.GetLatestWorkHabit(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Respond GetLatestWorkHabit: %v", err)
		return chat.RespondOutput{}, err
	}

	var reply string
	switch intent.Intent {
	case router.IntentTasks:
		reply = uc.renderTasks(tasks)
	case router.IntentProductivity:
		reply = uc.renderProductivity(habit)
	case router.IntentDeadlines:
		reply = uc.renderDeadlines(tasks, now)
	case router.IntentHelp:
		reply = uc.renderHelp()
	case router.IntentSuggestions:
		reply = uc.renderSuggestions(habit)
	default:
		reply = uc.renderFallback(input.Message)
	}

	return chat.RespondOutput{
		Response:  reply,
		Intent:    string(intent.Intent),
		Timestamp: now,
	}, nil
}

func (uc *implUseCase) renderTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "Great job! You don't have any pending tasks at the moment. You're all caught up!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You currently have %d pending tasks. Here are your top priorities:\n\n", len(tasks))
	for i, t := range tasks {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s (Priority: %d, Urgency: %s)\n", i+1, t.Title, t.PriorityScore, t.UrgencyLevel)
	}
	fmt.Fprintf(&b, "\nI recommend focusing on %q first as it has the highest priority.", tasks[0].Title)
	return b.String()
}

func (uc *implUseCase) renderProductivity(habit model.WorkHabit) string {
	if habit.ID == "" {
		return "I don't have enough data yet to provide productivity insights. Keep using the platform and I'll analyze your work patterns!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your productivity score today is %d%%. ", habit.ProductivityScore)
	fmt.Fprintf(&b, "You've completed %d out of %d tasks. ", habit.CompletedTasks, habit.TotalTasks)

	if habit.OverloadIndicator {
		b.WriteString("\n\nI've noticed signs of potential overload. ")
	}
	if habit.ContextSwitches > 20 {
		fmt.Fprintf(&b, "You've switched contexts %d times today. Consider using time-blocking to reduce interruptions. ", habit.ContextSwitches)
	}
	if habit.AvgWorkingHours > 9 {
		fmt.Fprintf(&b, "You've worked %.1f hours today. Remember to take breaks to maintain productivity. ", habit.AvgWorkingHours)
	}
	return b.String()
}

func (uc *implUseCase) renderDeadlines(tasks []model.Task, now time.Time) string {
	cutoff := now.Add(3 * 24 * time.Hour)
	var urgent []model.Task
	for _, t := range tasks {
		if t.Deadline != nil && !t.Deadline.After(cutoff) {
			urgent = append(urgent, t)
		}
	}

	if len(urgent) == 0 {
		return "You don't have any tasks with urgent deadlines in the next 3 days."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d tasks with upcoming deadlines:\n\n", len(urgent))
	for i, t := range urgent {
		due := "overdue"
		if days := datemath.DaysUntil(*t.Deadline, now); days > 0 {
			due = fmt.Sprintf("%d days", days)
		}
		fmt.Fprintf(&b, "%d. %s - Due in %s\n", i+1, t.Title, due)
	}
	return b.String()
}

func (uc *implUseCase) renderHelp() string {
	var b strings.Builder
	b.WriteString("I'm your AI productivity assistant! I can help you with:\n\n")
	b.WriteString("• Viewing and prioritizing your tasks\n")
	b.WriteString("• Understanding your productivity patterns\n")
	b.WriteString("• Tracking upcoming deadlines\n")
	b.WriteString("• Analyzing your work habits\n")
	b.WriteString("• Providing suggestions to improve focus\n\n")
	b.WriteString("Just ask me about your tasks, productivity, deadlines, or work patterns!")
	return b.String()
}

func (uc *implUseCase) renderSuggestions(habit model.WorkHabit) string {
	if habit.ID == "" {
		return "I need more data to provide personalized suggestions. Keep working and I'll learn your patterns!"
	}
	if len(habit.Insights.Suggestions) == 0 {
		return "You're doing great! Keep up your current work habits."
	}

	var b strings.Builder
	b.WriteString("Based on your work patterns, here are my suggestions:\n\n")
	for i, suggestion := range habit.Insights.Suggestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, suggestion)
	}
	return b.String()
}

func (uc *implUseCase) renderFallback(message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I understand you're asking about %q. ", message)
	b.WriteString("I can help you with tasks, productivity analysis, deadlines, and work patterns. ")
	b.WriteString("Could you be more specific about what you'd like to know?")
	return b.String()
}
