package http

import (
	"errors"
	"net/http"

	"smart-task-tracker/internal/priority"
	pkgErrors "smart-task-tracker/pkg/errors"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var vErr *priority.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Error())
	}
	return pkgErrors.ErrInternalServerError
}
