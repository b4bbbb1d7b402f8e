package usecase

import (
	"time"

	"workpulse/internal/chat"
	habitRepo "workpulse/internal/habit/repository"
	"workpulse/internal/router"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/log"
)

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	router router.Router
	tasks  taskRepo.TaskRepository
	habits habitRepo.Repository
	l      log.Logger
	clock  func() time.Time
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(rt router.Router, tasks taskRepo.TaskRepository, habits habitRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		router: rt,
		tasks:  tasks,
		habits: habits,
		l:      l,
		clock:  time.Now,
	}
}
