package postgre

import (
	"database/sql"
	"fmt"

	"workpulse/internal/habit/repository"
	"workpulse/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the habit domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("habit/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("habit/repository/postgre.%s", method)
}
