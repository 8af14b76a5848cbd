package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cvmaker/internal/assistant"
	"github.com/jonathan/cvmaker/internal/transfer"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		importErr     *transfer.ImportError
		assistantErr  *assistant.AssistantError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &importErr):
		return http.StatusBadRequest
	case errors.Is(err, assistant.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &assistantErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
