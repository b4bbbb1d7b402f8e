package http

import (
	"workpulse/internal/habit"
	"workpulse/internal/model"
	"workpulse/pkg/response"
)

// --- Request DTOs ---

type analyzeReq struct {
	Date string `json:"date"`
}

func (r analyzeReq) toInput() habit.AnalyzeInput {
	return habit.AnalyzeInput{Date: r.Date}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) toInput() habit.HistoryInput {
	limit := r.Limit
	if limit <= 0 || limit > 90 {
		limit = 30
	}
	return habit.HistoryInput{Limit: limit}
}

// --- Response DTOs ---

type habitResp struct {
	ID                string              `json:"id"`
	AnalysisDate      string              `json:"analysis_date"`
	TotalTasks        int                 `json:"total_tasks"`
	CompletedTasks    int                 `json:"completed_tasks"`
	ProductivityScore int                 `json:"productivity_score"`
	ContextSwitches   int                 `json:"context_switches"`
	AvgWorkingHours   float64             `json:"avg_working_hours"`
	OverloadIndicator bool                `json:"overload_indicator"`
	IgnoredPriorities int                 `json:"ignored_priorities"`
	Insights          model.HabitInsights `json:"insights"`
	CreatedAt         response.DateTime   `json:"created_at"`
}

func newHabitResp(h model.WorkHabit) habitResp {
	return habitResp{
		ID:                h.ID,
		AnalysisDate:      h.AnalysisDate,
		TotalTasks:        h.TotalTasks,
		CompletedTasks:    h.CompletedTasks,
		ProductivityScore: h.ProductivityScore,
		ContextSwitches:   h.ContextSwitches,
		AvgWorkingHours:   h.AvgWorkingHours,
		OverloadIndicator: h.OverloadIndicator,
		IgnoredPriorities: h.IgnoredPriorities,
		Insights:          h.Insights,
		CreatedAt:         response.DateTime(h.CreatedAt),
	}
}

type analyzeResp struct {
	Habit habitResp `json:"habit"`
}

func (h *handler) newAnalyzeResp(out habit.AnalyzeOutput) analyzeResp {
	return analyzeResp{Habit: newHabitResp(out.Habit)}
}

type latestResp struct {
	Habit *habitResp `json:"habit,omitempty"`
	Found bool       `json:"found"`
}

func (h *handler) newLatestResp(out habit.LatestOutput) latestResp {
	if !out.Found {
		return latestResp{Found: false}
	}
	resp := newHabitResp(out.Habit)
	return latestResp{Habit: &resp, Found: true}
}

type historyResp struct {
	Habits []habitResp `json:"habits"`
}

func (h *handler) newHistoryResp(out habit.HistoryOutput) historyResp {
	habits := make([]habitResp, len(out.Habits))
	for i, wh := range out.Habits {
		habits[i] = newHabitResp(wh)
	}
	return historyResp{Habits: habits}
}
