package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrSyncDisabled      = errors.New("sync is not configured")
	ErrInvalidTransition = errors.New("invalid controller state transition")
)
