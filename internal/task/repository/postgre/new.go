package postgre

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"task-api/internal/task/repository"
	"task-api/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() (uuid.UUID, error)
}

// New creates a new PostgreSQL-backed Repository for the task domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewV7}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
