package response

import (
	"errors"
	"net/http"

	"signhub/internal/domain/apperr"
)

const (
	StatusOk    = "Ok"
	StatusError = "Error"

	InternalMessage = "Ocorreu um erro interno. Tente novamente mais tarde."
)

// StatusCode maps an error kind to its HTTP status. Unknown errors are internal.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, apperr.ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message is the text a caller may see for err. Internal failures never leak their cause.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return InternalMessage
	}
	return apperr.Message(err, InternalMessage)
}
