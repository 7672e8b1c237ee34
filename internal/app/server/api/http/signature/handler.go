package signature

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/api/http/response"
	"signhub/internal/domain/signature"
)

const signedMessage = "Mensagem assinada com sucesso!"

type Handler struct {
	service    signature.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service signature.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "signature_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signOp(), h.sign)
}

func (h *Handler) sign(ctx context.Context, input *signInput) (*signOutput, error) {
	res, err := h.service.Sign(ctx, input.Body.Username, input.Body.Message)
	if err != nil {
		status := response.StatusCode(err)
		if status == http.StatusInternalServerError {
			h.log.Error("sign failed", "error", err)
		}
		return &signOutput{
			Status: status,
			Body:   SignResponse{Status: response.StatusError, Error: response.Message(err)},
		}, nil
	}

	return &signOutput{
		Status: http.StatusCreated,
		Body: SignResponse{
			Status:       response.StatusOk,
			Message:      signedMessage,
			SignatureID:  res.SignatureID.String(),
			SignatureB64: res.SignatureB64,
		},
	}, nil
}
