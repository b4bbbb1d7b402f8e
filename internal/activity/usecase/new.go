package usecase

import (
	"time"

	"workpulse/internal/activity"
	"workpulse/internal/activity/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// implUseCase is the private implementation of activity.UseCase.
type implUseCase struct {
	repo     repository.Repository
	dateMath *datemath.Parser
	l        log.Logger
	clock    func() time.Time
}

var _ activity.UseCase = (*implUseCase)(nil)

// New creates a new activity UseCase implementation.
func New(repo repository.Repository, dateMath *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		dateMath: dateMath,
		l:        l,
		clock:    time.Now,
	}
}
