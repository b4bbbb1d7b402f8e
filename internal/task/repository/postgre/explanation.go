package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"workpulse/internal/model"
	repo "workpulse/internal/task/repository"
)

// Explanations are generic audit rows keyed by entity; this repository only
// ever writes them for tasks.
const explanationEntityType = "task"

// CreateExplanation inserts a scoring explanation row with its factors as JSONB.
func (r *implRepository) CreateExplanation(ctx context.Context, opt repo.CreateExplanationOptions) (model.AIExplanation, error) {
	factors, err := json.Marshal(opt.Factors)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateExplanation"), err)
		return model.AIExplanation{}, repo.ErrFailedToInsert
	}

	const query = `
		INSERT INTO ai_explanations (user_id, entity_type, entity_id, explanation, factors, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, entity_type, entity_id, explanation, factors, created_at`

	var exp model.AIExplanation
	var rawFactors []byte
	err = r.db.QueryRowContext(ctx, query, opt.UserID, explanationEntityType, opt.TaskID, opt.ExplanationText, factors).Scan(
		&exp.ID, &exp.UserID, &exp.EntityType, &exp.EntityID, &exp.Explanation, &rawFactors, &exp.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateExplanation"), err)
		return model.AIExplanation{}, repo.ErrFailedToInsert
	}
	if err := json.Unmarshal(rawFactors, &exp.Factors); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("CreateExplanation"), err)
		return model.AIExplanation{}, repo.ErrFailedToInsert
	}
	return exp, nil
}

// ListExplanations returns task explanations filtered by entity and owner, newest first.
func (r *implRepository) ListExplanations(ctx context.Context, opt repo.ListExplanationsOptions) ([]model.AIExplanation, error) {
	conditions := []string{"entity_type = $1"}
	args := []any{explanationEntityType}
	idx := 2

	if opt.TaskID != "" {
		conditions = append(conditions, fmt.Sprintf("entity_id = $%d", idx))
		args = append(args, opt.TaskID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, entity_type, entity_id, explanation, factors, created_at
		FROM ai_explanations WHERE %s ORDER BY created_at DESC`, strings.Join(conditions, " AND "))
	if opt.Limit > 0 {
		query = fmt.Sprintf("%s LIMIT $%d", query, idx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExplanations"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var exps []model.AIExplanation
	for rows.Next() {
		var exp model.AIExplanation
		var rawFactors []byte
		if err := rows.Scan(&exp.ID, &exp.UserID, &exp.EntityType, &exp.EntityID, &exp.Explanation, &rawFactors, &exp.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal(rawFactors, &exp.Factors); err != nil {
			return nil, repo.ErrFailedToList
		}
		exps = append(exps, exp)
	}
	return exps, nil
}
