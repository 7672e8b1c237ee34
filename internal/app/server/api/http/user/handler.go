package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/api/http/response"
	"signhub/internal/domain/user"
)

const registeredMessage = "Usuário cadastrado com sucesso e chave gerada!"

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "user_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	reg, err := h.service.Register(ctx, input.Body.Username)
	if err != nil {
		status := response.StatusCode(err)
		if status == http.StatusInternalServerError {
			h.log.Error("register failed", "error", err)
		}
		return &registerOutput{
			Status: status,
			Body:   RegisterResponse{Status: response.StatusError, Error: response.Message(err)},
		}, nil
	}

	return &registerOutput{
		Status: http.StatusCreated,
		Body: RegisterResponse{
			Status:         response.StatusOk,
			Message:        registeredMessage,
			Username:       reg.Username,
			WelcomeMessage: reg.WelcomeMessage,
			Signature:      reg.SignatureB64,
		},
	}, nil
}
