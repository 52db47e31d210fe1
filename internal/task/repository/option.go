package repository

import "task-api/internal/task"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title   string
	Content string
}

// MaxPreallocRows caps the result slice capacity reserved up front for ListTasks.
const MaxPreallocRows = 100

// ListTasksOptions holds the pagination window for listing Tasks, ordered by id.
type ListTasksOptions struct {
	Limit  int
	Offset int
}

// Validate rejects negative windows.
func (o ListTasksOptions) Validate() error {
	if o.Limit < 0 || o.Offset < 0 {
		return ErrInvalidPagination
	}
	return nil
}

// UpdateTaskOptions holds a partial update. Unset fields keep the stored value.
type UpdateTaskOptions struct {
	ID      string
	Title   task.Optional[string]
	Content task.Optional[string]
}
