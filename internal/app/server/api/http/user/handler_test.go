package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/api/http/response"
	"signhub/internal/domain/apperr"
	"signhub/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username string) (user.Registration, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.Registration), args.Error(1)
}

func TestHandler_register(t *testing.T) {
	reg := user.Registration{
		UserID:         uuid.New(),
		Username:       "alice",
		WelcomeMessage: user.WelcomeMessage("alice"),
		SignatureB64:   "c2lnbmF0dXJl",
	}

	tests := []struct {
		name       string
		serviceReg user.Registration
		serviceErr error
		wantStatus int
		wantBody   RegisterResponse
	}{
		{
			name:       "created",
			serviceReg: reg,
			wantStatus: http.StatusCreated,
			wantBody: RegisterResponse{
				Status:         response.StatusOk,
				Message:        registeredMessage,
				Username:       "alice",
				WelcomeMessage: "Bem-vindo, alice! Sua conta foi criada com sucesso.",
				Signature:      "c2lnbmF0dXJl",
			},
		},
		{
			name:       "missing username",
			serviceErr: user.ErrUsernameRequired,
			wantStatus: http.StatusBadRequest,
			wantBody:   RegisterResponse{Status: response.StatusError, Error: "Nome de usuário é obrigatório."},
		},
		{
			name:       "duplicate username",
			serviceErr: fmt.Errorf("register %q: %w", "alice", user.ErrUsernameTaken),
			wantStatus: http.StatusConflict,
			wantBody:   RegisterResponse{Status: response.StatusError, Error: "Nome de usuário já existe."},
		},
		{
			name:       "internal failure is not leaked",
			serviceErr: apperr.Internal("create user", errors.New("disk full")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   RegisterResponse{Status: response.StatusError, Error: response.InternalMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Register", mock.Anything, "alice").Return(tt.serviceReg, tt.serviceErr)
			h := NewHandler(svc, slog.Default(), huma.Middlewares{})

			input := &registerInput{}
			input.Body.Username = "alice"

			out, err := h.register(context.Background(), input)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, tt.wantBody, out.Body)
			svc.AssertExpectations(t)
		})
	}
}
