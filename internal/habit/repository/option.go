package repository

import "workpulse/internal/model"

// UpsertWorkHabitOptions holds a full day's rollup. The (UserID, AnalysisDate)
// pair is the conflict key: re-analysis overwrites the existing row.
type UpsertWorkHabitOptions struct {
	UserID            string
	AnalysisDate      string
	TotalTasks        int
	CompletedTasks    int
	ProductivityScore int
	ContextSwitches   int
	AvgWorkingHours   float64
	OverloadIndicator bool
	IgnoredPriorities int
	Insights          model.HabitInsights
}

// ListWorkHabitsOptions holds filter parameters for listing rollups.
type ListWorkHabitsOptions struct {
	UserID string
	Limit  int
}
