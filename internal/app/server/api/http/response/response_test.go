package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"signhub/internal/domain/apperr"
)

func TestStatusCodeAndMessage(t *testing.T) {
	taken := apperr.Conflict("username_taken", "Nome de usuário já existe.")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        apperr.Validation("required", "Campo obrigatório."),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Campo obrigatório.",
		},
		{
			name:       "wrapped conflict",
			err:        fmt.Errorf("register %q: %w", "alice", taken),
			wantStatus: http.StatusConflict,
			wantMsg:    "Nome de usuário já existe.",
		},
		{
			name:       "not found",
			err:        apperr.NotFound("user_not_found", "Usuário não encontrado."),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Usuário não encontrado.",
		},
		{
			name:       "internal hides cause",
			err:        apperr.Internal("create user", errors.New("pq: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    InternalMessage,
		},
		{
			name:       "unclassified",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    InternalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, StatusCode(tt.err))
			assert.Equal(t, tt.wantMsg, Message(tt.err))
		})
	}
}

func TestStatusCode_Nil(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusCode(nil))
}
