package usecase

import (
	"time"

	"workpulse/internal/task"
	"workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	dateMath *datemath.Parser
	l        log.Logger
	clock    func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, dateMath *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		dateMath: dateMath,
		l:        l,
		clock:    time.Now,
	}
}
