package services

import "errors"

var (
	// ErrNotFound means the delete target does not exist. Mapped to 404.
	ErrNotFound = errors.New("record not found")
	// ErrValidation means input was rejected before reaching storage.
	ErrValidation = errors.New("validation failed")
)
