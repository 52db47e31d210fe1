package task

import "time"

// --- Task Domain Model ---

// Task is the single persisted entity of the service.
// CreatedAt is nil when the store has not populated it.
type Task struct {
	ID        string
	Title     string
	Content   string
	CreatedAt *time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title   string
	Content string
}

type ListTasksInput struct {
	Limit  int
	Offset int
}

// UpdateTaskInput carries a partial update. Unset fields keep their stored value.
type UpdateTaskInput struct {
	ID      string
	Title   Optional[string]
	Content Optional[string]
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks  []Task
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task Task
}

type UpdateTaskOutput struct {
	Task Task
}
