package verification

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"signhub/internal/app/server/api/http/response"
)

func (h *Handler) verifyOp() huma.Operation {
	op := huma.Operation{
		OperationID: "signature-verify",
		Method:      http.MethodPost,
		Path:        "/api/verify_signature",
		Summary:     "Verify a stored signature by id, or a text and signature pair",
		Tags:        []string{"signatures"},
		Middlewares: h.middleware,
	}
	return response.WithInvalidBody(op, func(message string) any {
		return VerifyResponse{IsValid: false, Message: message}
	})
}
