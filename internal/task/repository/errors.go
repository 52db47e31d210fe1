package repository

import (
	"errors"

	"task-api/internal/task"
)

var (
	// ErrStorage matches, via errors.Is, every failure that originates in the store.
	ErrStorage           = task.ErrStorage
	ErrInvalidPagination = task.ErrInvalidPagination
	ErrNotFound          = errors.New("record not found")

	ErrFailedToInsert = newStorageError("failed to insert record")
	ErrFailedToGet    = newStorageError("failed to get record")
	ErrFailedToList   = newStorageError("failed to list records")
	ErrFailedToUpdate = newStorageError("failed to update record")
	ErrFailedToDelete = newStorageError("failed to delete record")
)

type storageError struct {
	msg string
}

func newStorageError(msg string) error {
	return &storageError{msg: msg}
}

func (e *storageError) Error() string { return e.msg }

func (e *storageError) Is(target error) bool { return target == ErrStorage }
