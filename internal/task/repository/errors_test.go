package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"task-api/internal/task/repository"
)

func TestStorageErrorsMatchErrStorage(t *testing.T) {
	for _, err := range []error{
		repository.ErrFailedToInsert,
		repository.ErrFailedToGet,
		repository.ErrFailedToList,
		repository.ErrFailedToUpdate,
		repository.ErrFailedToDelete,
		fmt.Errorf("wrapped: %w", repository.ErrFailedToGet),
	} {
		if !errors.Is(err, repository.ErrStorage) {
			t.Errorf("%v should match ErrStorage", err)
		}
	}

	if errors.Is(repository.ErrNotFound, repository.ErrStorage) {
		t.Error("ErrNotFound must not be classified as a storage error")
	}
	if !errors.Is(repository.ErrFailedToDelete, repository.ErrFailedToDelete) {
		t.Error("sentinel should match itself")
	}
	if errors.Is(repository.ErrFailedToDelete, repository.ErrFailedToInsert) {
		t.Error("distinct storage sentinels must not match each other")
	}
}

func TestListTasksOptionsValidate(t *testing.T) {
	if err := (repository.ListTasksOptions{Limit: 10, Offset: 0}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (repository.ListTasksOptions{Limit: -1}).Validate(); !errors.Is(err, repository.ErrInvalidPagination) {
		t.Errorf("expected ErrInvalidPagination, got %v", err)
	}
	if err := (repository.ListTasksOptions{Limit: 1, Offset: -10}).Validate(); !errors.Is(err, repository.ErrInvalidPagination) {
		t.Errorf("expected ErrInvalidPagination, got %v", err)
	}
}
