// Package memory is an in-process task Repository for local runs and tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"task-api/internal/task"
	"task-api/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]task.Task
	ids   []string // kept sorted ascending
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// New creates an empty in-memory Repository.
func New() repository.Repository {
	return &implRepository{
		tasks: make(map[string]task.Task),
		now:   time.Now,
		newID: uuid.NewV7,
	}
}
