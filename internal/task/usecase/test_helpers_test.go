package usecase_test

import (
	"context"

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

// failingRepo returns the same storage error from every method.
type failingRepo struct {
	err error
}

func (f *failingRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	return task.Task{}, f.err
}

func (f *failingRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	return nil, f.err
}

func (f *failingRepo) GetTask(ctx context.Context, id string) (task.Task, error) {
	return task.Task{}, f.err
}

func (f *failingRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	return task.Task{}, f.err
}

func (f *failingRepo) DeleteTask(ctx context.Context, id string) error {
	return f.err
}
