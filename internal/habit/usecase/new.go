package usecase

import (
	"time"

	activityRepo "workpulse/internal/activity/repository"
	"workpulse/internal/habit"
	"workpulse/internal/habit/repository"
	taskRepo "workpulse/internal/task/repository"
	"workpulse/pkg/datemath"
	"workpulse/pkg/log"
)

// implUseCase is the private implementation of habit.UseCase.
type implUseCase struct {
	repo       repository.Repository
	tasks      taskRepo.TaskRepository
	activities activityRepo.Repository
	dateMath   *datemath.Parser
	l          log.Logger
	clock      func() time.Time
}

var _ habit.UseCase = (*implUseCase)(nil)

// New creates a new habit UseCase implementation.
func New(repo repository.Repository, tasks taskRepo.TaskRepository, activities activityRepo.Repository, dateMath *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		tasks:      tasks,
		activities: activities,
		dateMath:   dateMath,
		l:          l,
		clock:      time.Now,
	}
}
