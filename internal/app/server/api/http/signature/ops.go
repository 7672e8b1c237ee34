package signature

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"signhub/internal/app/server/api/http/response"
)

func (h *Handler) signOp() huma.Operation {
	op := huma.Operation{
		OperationID:   "signature-sign",
		Method:        http.MethodPost,
		Path:          "/api/sign",
		Summary:       "Sign a message with the user's private key",
		Tags:          []string{"signatures"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
	return response.WithInvalidBody(op, func(message string) any {
		return SignResponse{Status: response.StatusError, Error: message}
	})
}
