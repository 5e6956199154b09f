// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/autofill"
	"github.com/jonathan/resume-builder/internal/draft"
	"github.com/jonathan/resume-builder/internal/submit"
	"github.com/jonathan/resume-builder/internal/transform"
)

// ErrSessionNotFound indicates the session id matches no active session
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound, *draft.OutOfRangeError:
		return http.StatusNotFound
	case *ErrValidation, *transform.UnknownFormatError, *autofill.MissingInputError:
		return http.StatusBadRequest
	case *draft.LastEntryError:
		return http.StatusConflict
	case *autofill.ProviderUnavailableError:
		return http.StatusServiceUnavailable
	case *autofill.MalformedResponseError, *submit.UploadError, *submit.SubmitError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
