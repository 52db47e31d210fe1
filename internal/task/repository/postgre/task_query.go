package postgre

import (
	"database/sql"
	"fmt"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

const (
	taskTable   = "tasks"
	taskColumns = "id, title, content, created_at"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row in taskColumns order.
func scanTask(row rowScanner) (task.Task, error) {
	var (
		t         task.Task
		createdAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Content, &createdAt); err != nil {
		return task.Task{}, err
	}
	if createdAt.Valid {
		ts := createdAt.Time
		t.CreatedAt = &ts
	}
	return t, nil
}

// buildListQuery returns the page query. Ordering by id gives insertion order because ids are UUIDv7.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY id ASC LIMIT $1 OFFSET $2",
		taskColumns, taskTable,
	)
	return query, []any{opt.Limit, opt.Offset}
}
