package model

import "time"

// AIExplanation is an append-only audit row recording why a score was
// assigned. The scoring pipeline only ever writes these, never reads them.
type AIExplanation struct {
	ID          string
	UserID      string
	EntityType  string // e.g. "task"
	EntityID    string
	Explanation string
	Factors     map[string]any
	CreatedAt   time.Time
}
