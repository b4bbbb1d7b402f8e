package usecase

import (
	"time"

	"workpulse/internal/notification"
	"workpulse/internal/notification/repository"
	"workpulse/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	clock func() time.Time
}

var _ notification.UseCase = (*implUseCase)(nil)

// New creates a new notification UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		clock: time.Now,
	}
}
