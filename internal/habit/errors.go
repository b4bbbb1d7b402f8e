package habit

import "errors"

var (
	ErrInvalidDate = errors.New("analysis date must be YYYY-MM-DD")
)
