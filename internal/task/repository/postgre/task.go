package postgre

import (
	"context"
	"database/sql"
	"errors"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

// CreateTask inserts a new Task row and returns the persisted entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at`

	id, err := r.newID()
	if err != nil {
		r.l.Errorf(ctx, "%s newID: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id.String(), opt.Title, opt.Content))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks returns one page of Tasks ordered by id. An empty page is not an error.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	query, args := r.buildListQuery(opt)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]task.Task, 0, min(opt.Limit, repo.MaxPreallocRows))
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// GetTask fetches a Task by id. Returns repo.ErrNotFound when no row matches.
func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	const query = `SELECT id, title, content, created_at FROM tasks WHERE id = $1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// UpdateTask merges the set fields over the stored row and writes it back.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	const query = `
		UPDATE tasks
		SET title = $1, content = $2
		WHERE id = $3
		RETURNING id, title, content, created_at`

	existing, err := r.GetTask(ctx, opt.ID)
	if err != nil {
		return task.Task{}, err
	}

	title := opt.Title.OrElse(existing.Title)
	content := opt.Content.OrElse(existing.Content)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, title, content, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		// deleted between the read and the write
		return task.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by id. Returns repo.ErrNotFound when no row was affected.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if affected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
