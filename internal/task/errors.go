package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrEmptyUpdate   = errors.New("nothing to update")
)
