package model

import "time"

// HabitInsights is the structured narrative attached to a day's analysis.
type HabitInsights struct {
	Summary     string   `json:"summary"`
	Patterns    []string `json:"patterns"`
	Suggestions []string `json:"suggestions"`
	Concerns    []string `json:"concerns"`
}

// WorkHabit is the per-user, per-calendar-day productivity rollup.
// At most one live row exists per (UserID, AnalysisDate).
type WorkHabit struct {
	ID                string
	UserID            string
	AnalysisDate      string // "YYYY-MM-DD"
	TotalTasks        int
	CompletedTasks    int
	ProductivityScore int
	ContextSwitches   int
	AvgWorkingHours   float64
	OverloadIndicator bool
	IgnoredPriorities int // can be negative when completions span day boundaries
	Insights          HabitInsights
	CreatedAt         time.Time
}
