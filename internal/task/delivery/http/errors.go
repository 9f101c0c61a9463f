package http

import (
	"errors"
	"net/http"

	"smart-task-tracker/internal/priority"
	"smart-task-tracker/internal/task"
	pkgErrors "smart-task-tracker/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var vErr *priority.ValidationError
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrInvalidFilter), errors.Is(err, task.ErrEmptyUpdate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &vErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
