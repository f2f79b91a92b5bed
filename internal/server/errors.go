package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/namesmith/namesmith/internal/generation"
	"github.com/namesmith/namesmith/internal/personas"
)

// ErrInvalidCredentials indicates a failed login attempt.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid access password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Validation errors from the pipeline map to 400; everything unclassified is
// a 500.
func HTTPStatus(err error) int {
	var credErr *ErrInvalidCredentials
	if errors.As(err, &credErr) {
		return http.StatusUnauthorized
	}

	var capErr *generation.TooManyCandidatesError
	var countErr *personas.PersonaCountError
	var presetErr *personas.UnknownPresetError
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &capErr) || errors.As(err, &countErr) || errors.As(err, &presetErr) || errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
