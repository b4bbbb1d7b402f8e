package habit

import "workpulse/internal/model"

// AnalyzeInput selects the day to analyze. An empty Date means today.
type AnalyzeInput struct {
	Date string
}

// AnalyzeOutput returns the stored rollup for the analyzed day.
type AnalyzeOutput struct {
	Habit model.WorkHabit `json:"habit"`
}

// LatestOutput returns the most recent rollup, if any.
type LatestOutput struct {
	Habit model.WorkHabit `json:"habit"`
	Found bool            `json:"found"`
}

// HistoryInput holds pagination for past rollups.
type HistoryInput struct {
	Limit int
}

// HistoryOutput returns past rollups, newest first.
type HistoryOutput struct {
	Habits []model.WorkHabit `json:"habits"`
}
