package http

import (
	"errors"
	"net/http"

	"smart-task-parser/internal/task"
	pkgErrors "smart-task-parser/pkg/errors"
)

var (
	errMissingID      = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidRequest = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text must not be empty")
	case errors.Is(err, task.ErrEmptyTaskName):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "taskName must not be empty")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "priority must be one of P1, P2, P3, P4")
	case errors.Is(err, task.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "dueDate must use the format YYYY-MM-DDTHH:MM")
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
