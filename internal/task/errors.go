package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrUserRequired     = errors.New("user id is required")
	ErrTitleRequired    = errors.New("task title is required")
	ErrDeadlineRequired = errors.New("task deadline is required")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyBatch       = errors.New("activity batch is empty")
)
