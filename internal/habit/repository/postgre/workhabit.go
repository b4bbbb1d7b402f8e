package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	repo "workpulse/internal/habit/repository"
	"workpulse/internal/model"
)

const habitColumns = `id, user_id, analysis_date, total_tasks, completed_tasks, productivity_score,
	context_switches, avg_working_hours, overload_indicator, ignored_priorities, insights, created_at`

func scanHabit(s interface{ Scan(dest ...any) error }) (model.WorkHabit, error) {
	var h model.WorkHabit
	var rawInsights []byte
	err := s.Scan(
		&h.ID, &h.UserID, &h.AnalysisDate, &h.TotalTasks, &h.CompletedTasks, &h.ProductivityScore,
		&h.ContextSwitches, &h.AvgWorkingHours, &h.OverloadIndicator, &h.IgnoredPriorities,
		&rawInsights, &h.CreatedAt,
	)
	if err != nil {
		return model.WorkHabit{}, err
	}
	if err := json.Unmarshal(rawInsights, &h.Insights); err != nil {
		return model.WorkHabit{}, err
	}
	return h, nil
}

// UpsertWorkHabit writes the day's rollup, replacing any previous analysis
// of the same (user_id, analysis_date).
func (r *implRepository) UpsertWorkHabit(ctx context.Context, opt repo.UpsertWorkHabitOptions) (model.WorkHabit, error) {
	insights, err := json.Marshal(opt.Insights)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("UpsertWorkHabit"), err)
		return model.WorkHabit{}, repo.ErrFailedToUpsert
	}

	query := fmt.Sprintf(`
		INSERT INTO work_habits (user_id, analysis_date, total_tasks, completed_tasks,
			productivity_score, context_switches, avg_working_hours, overload_indicator,
			ignored_priorities, insights, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id, analysis_date) DO UPDATE SET
			total_tasks = EXCLUDED.total_tasks,
			completed_tasks = EXCLUDED.completed_tasks,
			productivity_score = EXCLUDED.productivity_score,
			context_switches = EXCLUDED.context_switches,
			avg_working_hours = EXCLUDED.avg_working_hours,
			overload_indicator = EXCLUDED.overload_indicator,
			ignored_priorities = EXCLUDED.ignored_priorities,
			insights = EXCLUDED.insights
		RETURNING %s`, habitColumns)

	habit, err := scanHabit(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.AnalysisDate, opt.TotalTasks, opt.CompletedTasks,
		opt.ProductivityScore, opt.ContextSwitches, opt.AvgWorkingHours,
		opt.OverloadIndicator, opt.IgnoredPriorities, insights,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertWorkHabit"), err)
		return model.WorkHabit{}, repo.ErrFailedToUpsert
	}
	return habit, nil
}

// GetLatestWorkHabit returns the newest rollup for the user.
// Returns zero-value WorkHabit (ID == "") when not found — no error.
func (r *implRepository) GetLatestWorkHabit(ctx context.Context, userID string) (model.WorkHabit, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM work_habits
		WHERE user_id = $1
		ORDER BY analysis_date DESC LIMIT 1`, habitColumns)

	habit, err := scanHabit(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return model.WorkHabit{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetLatestWorkHabit"), err)
		return model.WorkHabit{}, repo.ErrFailedToGet
	}
	return habit, nil
}

// ListWorkHabits returns past rollups for the user, newest first.
func (r *implRepository) ListWorkHabits(ctx context.Context, opt repo.ListWorkHabitsOptions) ([]model.WorkHabit, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM work_habits
		WHERE user_id = $1
		ORDER BY analysis_date DESC`, habitColumns)
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $2", query)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListWorkHabits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var habits []model.WorkHabit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		habits = append(habits, habit)
	}
	return habits, nil
}
