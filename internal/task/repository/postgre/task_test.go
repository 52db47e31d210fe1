package postgre

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"task-api/internal/task"
	repo "task-api/internal/task/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

const fixedID = "01927d3c-8a4e-7b1c-9f00-000000000001"

var columns = []string{"id", "title", "content", "created_at"}

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})

	r := New(db, &mockLogger{}).(*implRepository)
	r.newID = func() (uuid.UUID, error) { return uuid.MustParse(fixedID), nil }
	return r, mock
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`INSERT INTO tasks`).
			WithArgs(fixedID, "buy milk", "2% milk").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "buy milk", "2% milk", createdAt))

		got, err := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "buy milk", Content: "2% milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != fixedID || got.Title != "buy milk" || got.Content != "2% milk" {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.CreatedAt == nil || !got.CreatedAt.Equal(createdAt) {
			t.Errorf("expected created_at %v, got %v", createdAt, got.CreatedAt)
		}
	})

	t.Run("insert rejected", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`INSERT INTO tasks`).WillReturnError(errors.New("connection reset"))

		_, err := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "a", Content: "b"})
		if !errors.Is(err, repo.ErrFailedToInsert) || !errors.Is(err, repo.ErrStorage) {
			t.Errorf("expected ErrFailedToInsert storage error, got %v", err)
		}
	})

	t.Run("id generation fails", func(t *testing.T) {
		r, _ := newTestRepo(t)
		r.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy") }

		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{Title: "a", Content: "b"}); !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("page window", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT id, title, content, created_at FROM tasks ORDER BY id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(2, 4).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("id-5", "t5", "c5", nil))

		got, err := r.ListTasks(ctx, repo.ListTasksOptions{Limit: 2, Offset: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "id-5" {
			t.Fatalf("unexpected page: %+v", got)
		}
		if got[0].CreatedAt != nil {
			t.Errorf("null created_at should map to nil, got %v", got[0].CreatedAt)
		}
	})

	t.Run("empty page is not an error", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT .* FROM tasks`).WithArgs(10, 100).WillReturnRows(sqlmock.NewRows(columns))

		got, err := r.ListTasks(ctx, repo.ListTasksOptions{Limit: 10, Offset: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("huge limit does not preallocate", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT .* FROM tasks`).WithArgs(math.MaxInt, 0).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("id-1", "t1", "c1", nil))

		got, err := r.ListTasks(ctx, repo.ListTasksOptions{Limit: math.MaxInt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || cap(got) > repo.MaxPreallocRows {
			t.Errorf("len=%d cap=%d, want 1 row and cap <= %d", len(got), cap(got), repo.MaxPreallocRows)
		}
	})

	t.Run("negative window never reaches the store", func(t *testing.T) {
		r, _ := newTestRepo(t)
		if _, err := r.ListTasks(ctx, repo.ListTasksOptions{Limit: 10, Offset: -10}); !errors.Is(err, repo.ErrInvalidPagination) {
			t.Errorf("expected ErrInvalidPagination, got %v", err)
		}
	})

	t.Run("query failure", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT .* FROM tasks`).WillReturnError(errors.New("boom"))

		if _, err := r.ListTasks(ctx, repo.ListTasksOptions{Limit: 10}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestGetTask(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`SELECT id, title, content, created_at FROM tasks WHERE id = \$1`).
			WithArgs(fixedID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "t", "c", time.Now()))

		got, err := r.GetTask(ctx, fixedID)
		if err != nil || got.ID != fixedID {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
	})

	t.Run("zero rows is NotFound", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`FROM tasks WHERE id`).WithArgs(fixedID).WillReturnRows(sqlmock.NewRows(columns))

		if _, err := r.GetTask(ctx, fixedID); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("store failure is not NotFound", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`FROM tasks WHERE id`).WillReturnError(errors.New("conn refused"))

		_, err := r.GetTask(ctx, fixedID)
		if !errors.Is(err, repo.ErrFailedToGet) || errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	expectExisting := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery(`FROM tasks WHERE id`).WithArgs(fixedID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "buy milk", "2% milk", createdAt))
	}

	t.Run("content only keeps title", func(t *testing.T) {
		r, mock := newTestRepo(t)
		expectExisting(mock)
		mock.ExpectQuery(`UPDATE tasks\s+SET title = \$1, content = \$2\s+WHERE id = \$3`).
			WithArgs("buy milk", "whole milk", fixedID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "buy milk", "whole milk", createdAt))

		got, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{
			ID:      fixedID,
			Content: task.Some("whole milk"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "buy milk" || got.Content != "whole milk" {
			t.Errorf("unexpected task: %+v", got)
		}
	})

	t.Run("title only keeps content", func(t *testing.T) {
		r, mock := newTestRepo(t)
		expectExisting(mock)
		mock.ExpectQuery(`UPDATE tasks`).
			WithArgs("X", "2% milk", fixedID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "X", "2% milk", createdAt))

		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: fixedID, Title: task.Some("X")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no fields writes existing values back", func(t *testing.T) {
		r, mock := newTestRepo(t)
		expectExisting(mock)
		mock.ExpectQuery(`UPDATE tasks`).
			WithArgs("buy milk", "2% milk", fixedID).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(fixedID, "buy milk", "2% milk", createdAt))

		got, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: fixedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "buy milk" || got.Content != "2% milk" {
			t.Errorf("expected unchanged task, got %+v", got)
		}
	})

	t.Run("missing row skips the write", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectQuery(`FROM tasks WHERE id`).WithArgs(fixedID).WillReturnRows(sqlmock.NewRows(columns))

		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: fixedID, Title: task.Some("X")}); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("row deleted between read and write", func(t *testing.T) {
		r, mock := newTestRepo(t)
		expectExisting(mock)
		mock.ExpectQuery(`UPDATE tasks`).WillReturnError(sql.ErrNoRows)

		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: fixedID}); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		r, mock := newTestRepo(t)
		expectExisting(mock)
		mock.ExpectQuery(`UPDATE tasks`).WillReturnError(errors.New("deadlock"))

		if _, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: fixedID}); !errors.Is(err, repo.ErrFailedToUpdate) {
			t.Errorf("expected ErrFailedToUpdate, got %v", err)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec(`DELETE FROM tasks WHERE id = \$1`).WithArgs(fixedID).WillReturnResult(sqlmock.NewResult(0, 1))

		if err := r.DeleteTask(ctx, fixedID); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero rows affected is NotFound", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec(`DELETE FROM tasks`).WithArgs(fixedID).WillReturnResult(sqlmock.NewResult(0, 0))

		if err := r.DeleteTask(ctx, fixedID); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("exec failure", func(t *testing.T) {
		r, mock := newTestRepo(t)
		mock.ExpectExec(`DELETE FROM tasks`).WillReturnError(errors.New("conn closed"))

		if err := r.DeleteTask(ctx, fixedID); !errors.Is(err, repo.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete, got %v", err)
		}
	})
}
