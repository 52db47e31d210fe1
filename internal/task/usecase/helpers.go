package usecase

import (
	"errors"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

// domainError lifts repository not-found into the domain error; storage errors pass through untouched.
func (uc *implUseCase) domainError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}
