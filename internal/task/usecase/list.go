package usecase

import (
	"context"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

// List returns one page of Tasks ordered by id.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
