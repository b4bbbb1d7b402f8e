package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"workpulse/internal/model"
	repo "workpulse/internal/notification/repository"
)

const notificationColumns = `id, user_id, task_id, notification_type, title, message, priority,
	status, scheduled_for, action_url, created_at, dismissed_at`

func scanNotification(s interface{ Scan(dest ...any) error }) (model.Notification, error) {
	var n model.Notification
	var taskID sql.NullString
	err := s.Scan(
		&n.ID, &n.UserID, &taskID, &n.NotificationType, &n.Title, &n.Message, &n.Priority,
		&n.Status, &n.ScheduledFor, &n.ActionURL, &n.CreatedAt, &n.DismissedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}
	n.TaskID = taskID.String
	return n, nil
}

// CreateNotification inserts a notification row. An empty TaskID is stored
// as NULL to keep the task foreign key satisfied.
func (r *implRepository) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	query := fmt.Sprintf(`
		INSERT INTO notifications (user_id, task_id, notification_type, title, message,
			priority, status, scheduled_for, action_url, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s`, notificationColumns)

	n, err := scanNotification(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.TaskID, opt.NotificationType, opt.Title, opt.Message,
		opt.Priority, opt.Status, opt.ScheduledFor, opt.ActionURL,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// ListNotifications returns the user's notifications plus the total count,
// newest first.
func (r *implRepository) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, int, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notifications WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListNotifications"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM notifications WHERE %s ORDER BY created_at DESC", notificationColumns, where)
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $%d", query, idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotifications"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		notifications = append(notifications, n)
	}
	return notifications, total, nil
}

// DismissNotification marks a notification dismissed.
// Returns zero-value Notification (ID == "") when not found — no error.
func (r *implRepository) DismissNotification(ctx context.Context, opt repo.DismissNotificationOptions) (model.Notification, error) {
	query := fmt.Sprintf(`
		UPDATE notifications
		SET status = 'dismissed', dismissed_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING %s`, notificationColumns)

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, opt.DismissedAt, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Notification{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DismissNotification"), err)
		return model.Notification{}, repo.ErrFailedToUpdate
	}
	return n, nil
}
