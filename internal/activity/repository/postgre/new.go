package postgre

import (
	"database/sql"
	"fmt"

	"workpulse/internal/activity/repository"
	"workpulse/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the activity domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("activity/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("activity/repository/postgre.%s", method)
}
