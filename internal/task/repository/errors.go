package repository

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicated = errors.New("record already exists")
)
