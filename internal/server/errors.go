// Package server provides the HTTP REST API for the career-insights service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/career-insights/internal/ingestion"
	"github.com/jonathan/career-insights/internal/jobsearch"
	"github.com/jonathan/career-insights/internal/reports"
	"github.com/jonathan/career-insights/internal/textanalysis"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnauthorized indicates a user-scoped request without valid credentials.
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "authentication required"
}

// ErrForbidden indicates the authenticated user may not act on the resource.
type ErrForbidden struct {
	UserID string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("not allowed to access user %s", e.UserID)
}

// ErrUnavailable indicates an optional collaborator is not configured.
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation   *ErrValidation
		fieldErrors  validator.ValidationErrors
		empty        *textanalysis.EmptyInputError
		invalidID    *reports.InvalidIDError
		notFound     *reports.NotFoundError
		unsupported  *ingestion.UnsupportedFormatError
		extraction   *ingestion.ExtractionError
		unauthorized *ErrUnauthorized
		forbidden    *ErrForbidden
		unavailable  *ErrUnavailable
		jobSearch    *jobsearch.Error
		tooLarge     *http.MaxBytesError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &fieldErrors),
		errors.As(err, &empty), errors.As(err, &invalidID):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &jobSearch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
