package memory

import (
	"context"
	"sort"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	id, err := r.newID()
	if err != nil {
		return task.Task{}, repo.ErrFailedToInsert
	}
	createdAt := r.now().UTC()

	t := task.Task{
		ID:        id.String(),
		Title:     opt.Title,
		Content:   opt.Content,
		CreatedAt: &createdAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID]; exists {
		return task.Task{}, repo.ErrFailedToInsert
	}
	r.tasks[t.ID] = t
	i := sort.SearchStrings(r.ids, t.ID)
	r.ids = append(r.ids, "")
	copy(r.ids[i+1:], r.ids[i:])
	r.ids[i] = t.ID

	return copyTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]task.Task, 0, min(opt.Limit, repo.MaxPreallocRows))
	if opt.Offset >= len(r.ids) {
		return tasks, nil
	}
	end := len(r.ids)
	if opt.Limit < end-opt.Offset {
		end = opt.Offset + opt.Limit
	}
	for _, id := range r.ids[opt.Offset:end] {
		tasks = append(tasks, copyTask(r.tasks[id]))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return task.Task{}, repo.ErrNotFound
	}
	return copyTask(t), nil
}

// UpdateTask mirrors the Postgres read-then-write: the lock is not held between the two steps.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	existing, err := r.GetTask(ctx, opt.ID)
	if err != nil {
		return task.Task{}, err
	}

	existing.Title = opt.Title.OrElse(existing.Title)
	existing.Content = opt.Content.OrElse(existing.Content)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[opt.ID]; !ok {
		return task.Task{}, repo.ErrNotFound
	}
	r.tasks[opt.ID] = existing
	return copyTask(existing), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.tasks, id)
	i := sort.SearchStrings(r.ids, id)
	r.ids = append(r.ids[:i], r.ids[i+1:]...)
	return nil
}

// copyTask detaches the CreatedAt pointer from the stored value.
func copyTask(t task.Task) task.Task {
	if t.CreatedAt != nil {
		ts := *t.CreatedAt
		t.CreatedAt = &ts
	}
	return t
}
