package controllers

import (
	"errors"
	"net/http"

	"xplore-backend/services"
)

// statusForError maps the service sentinels onto HTTP codes; anything
// unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
