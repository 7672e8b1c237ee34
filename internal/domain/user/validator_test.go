package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameValidator_ValidateUsername(t *testing.T) {
	v := NewUsernameValidator()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "valid", username: "alice"},
		{name: "unicode", username: "joão"},
		{name: "empty", username: "", wantErr: ErrUsernameRequired},
		{name: "max length", username: strings.Repeat("x", MaxUsernameLen)},
		{name: "too long", username: strings.Repeat("x", MaxUsernameLen+1), wantErr: ErrUsernameTooLong},
		{name: "multibyte at limit", username: strings.Repeat("ç", MaxUsernameLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUsername(tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "alice", Normalize("  alice\t"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "a b", Normalize(" a b "))
}

func TestWelcomeMessage(t *testing.T) {
	assert.Equal(t, "Bem-vindo, bob! Sua conta foi criada com sucesso.", WelcomeMessage("bob"))
}
