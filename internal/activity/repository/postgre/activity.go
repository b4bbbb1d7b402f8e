package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	repo "workpulse/internal/activity/repository"
	"workpulse/internal/model"
)

const activityColumns = `id, user_id, workspace_id, app_id, activity_type, activity_data, duration_seconds, timestamp`

// CreateActivities appends a batch of activity records in one transaction.
func (r *implRepository) CreateActivities(ctx context.Context, opts []repo.CreateActivityOptions) ([]model.Activity, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateActivities"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO activities (user_id, workspace_id, app_id, activity_type, activity_data, duration_seconds, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, activityColumns)

	activities := make([]model.Activity, 0, len(opts))
	for _, opt := range opts {
		data, err := json.Marshal(opt.ActivityData)
		if err != nil {
			r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateActivities"), err)
			return nil, repo.ErrFailedToInsert
		}

		var a model.Activity
		var rawData []byte
		err = tx.QueryRowContext(ctx, query,
			opt.UserID, opt.WorkspaceID, opt.AppID, opt.ActivityType, data, opt.DurationSeconds, opt.Timestamp,
		).Scan(
			&a.ID, &a.UserID, &a.WorkspaceID, &a.AppID, &a.ActivityType, &rawData, &a.DurationSeconds, &a.Timestamp,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateActivities"), err)
			return nil, repo.ErrFailedToInsert
		}
		if err := json.Unmarshal(rawData, &a.ActivityData); err != nil {
			r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("CreateActivities"), err)
			return nil, repo.ErrFailedToInsert
		}
		activities = append(activities, a)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateActivities"), err)
		return nil, repo.ErrFailedToInsert
	}
	return activities, nil
}

// ListActivities returns activities matching the filters plus the total count,
// newest first.
func (r *implRepository) ListActivities(ctx context.Context, opt repo.ListActivitiesOptions) ([]model.Activity, int, error) {
	where, args := r.buildListQuery(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM activities WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListActivities"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM activities WHERE %s ORDER BY timestamp DESC", activityColumns, where)
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $%d", query, len(args)+1)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActivities"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		var rawData []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.WorkspaceID, &a.AppID, &a.ActivityType, &rawData, &a.DurationSeconds, &a.Timestamp); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		if err := json.Unmarshal(rawData, &a.ActivityData); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		activities = append(activities, a)
	}
	return activities, total, nil
}

func (r *implRepository) buildListQuery(opt repo.ListActivitiesOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Type != "" {
		conditions = append(conditions, fmt.Sprintf("activity_type = $%d", idx))
		args = append(args, opt.Type)
		idx++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("timestamp >= $%d", idx))
		args = append(args, opt.From)
		idx++
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("timestamp <= $%d", idx))
		args = append(args, opt.To)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
