package http

import (
	"errors"

	"task-api/internal/task"
	pkgErrors "task-api/pkg/errors"
	"task-api/pkg/response"
)

var (
	errInvalidID     = pkgErrors.NewBadRequest("id must be a valid UUID")
	errInvalidBody   = pkgErrors.NewBadRequest("invalid request body")
	errInvalidPaging = pkgErrors.NewBadRequest("page and limit must be integers")
	errEmptyTitle    = pkgErrors.NewBadRequest("title must not be empty")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Storage failures expose only the repository's fixed message; the cause is logged by the caller.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewNotFound(err.Error())
	case errors.Is(err, task.ErrInvalidPagination):
		return pkgErrors.NewBadRequest(err.Error())
	case errors.Is(err, task.ErrStorage):
		return pkgErrors.NewInternal(err.Error())
	default:
		return pkgErrors.NewInternal(response.DefaultErrorMessage)
	}
}
