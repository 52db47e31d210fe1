package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidPagination = errors.New("limit and offset must be non-negative")
	// ErrStorage is matched by every failure reported by the store.
	ErrStorage = errors.New("storage error")
)
