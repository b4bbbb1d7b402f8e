package activity

import "errors"

var (
	ErrTypeRequired = errors.New("activity type is required")
	ErrEmptyBatch   = errors.New("activity batch is empty")
)
