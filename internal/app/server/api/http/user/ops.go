package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"signhub/internal/app/server/api/http/response"
)

func (h *Handler) registerOp() huma.Operation {
	op := huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/api/register",
		Summary:       "Register a user and generate its RSA key pair",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
	return response.WithInvalidBody(op, func(message string) any {
		return RegisterResponse{Status: response.StatusError, Error: message}
	})
}
