package usecase

import (
	"context"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

// Create persists a new Task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: t}, nil
}
