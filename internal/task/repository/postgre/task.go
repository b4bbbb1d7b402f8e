package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"workpulse/internal/model"
	repo "workpulse/internal/task/repository"
)

const taskColumns = `id, user_id, workspace_id, app_id, title, description, status,
	priority_score, urgency_level, deadline, completion_percentage, is_ai_generated,
	source_type, source_reference, completed_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var t model.Task
	err := s.Scan(
		&t.ID, &t.UserID, &t.WorkspaceID, &t.AppID, &t.Title, &t.Description, &t.Status,
		&t.PriorityScore, &t.UrgencyLevel, &t.Deadline, &t.CompletionPercentage, &t.IsAIGenerated,
		&t.SourceType, &t.SourceReference, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, workspace_id, app_id, title, description, status,
			priority_score, urgency_level, deadline, completion_percentage, is_ai_generated,
			source_type, source_reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.WorkspaceID, opt.AppID, opt.Title, opt.Description, opt.Status,
		opt.PriorityScore, opt.UrgencyLevel, opt.Deadline, opt.CompletionPercentage,
		opt.IsAIGenerated, opt.SourceType, opt.SourceReference,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// CreateTasks inserts a batch of Tasks inside a single transaction.
// Either every row is inserted or none are.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO tasks (user_id, workspace_id, app_id, title, description, status,
			priority_score, urgency_level, deadline, completion_percentage, is_ai_generated,
			source_type, source_reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s`, taskColumns)

	tasks := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		task, err := scanTask(tx.QueryRowContext(ctx, query,
			opt.UserID, opt.WorkspaceID, opt.AppID, opt.Title, opt.Description, opt.Status,
			opt.PriorityScore, opt.UrgencyLevel, opt.Deadline, opt.CompletionPercentage,
			opt.IsAIGenerated, opt.SourceType, opt.SourceReference,
		))
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks"), err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, task)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// UpdateTaskScore persists a recomputed priority score and urgency level.
func (r *implRepository) UpdateTaskScore(ctx context.Context, opt repo.UpdateTaskScoreOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET priority_score = $1, urgency_level = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.PriorityScore, opt.UrgencyLevel, opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTaskScore"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// CompleteTask marks a Task completed with a 100% completion percentage.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET status = 'completed', completion_percentage = 100, completed_at = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.CompletedAt, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task by ID scoped to its owner.
func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
