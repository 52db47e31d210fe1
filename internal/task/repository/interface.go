package repository

import (
	"context"

	"task-api/internal/task"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	GetTask(ctx context.Context, id string) (task.Task, error)
	// UpdateTask reads the current row, then writes the merged values back.
	// The two round trips are not atomic: a concurrent update to the same id
	// can be overwritten with stale values for fields this call did not set.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
