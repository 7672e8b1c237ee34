package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID
	Username   string
	PublicKey  string
	PrivateKey string // PKCS#8 PEM, or sealed by the key vault
	CreatedAt  time.Time
}

// Registration is what a caller gets back from a successful Register.
type Registration struct {
	UserID         uuid.UUID
	Username       string
	WelcomeMessage string
	SignatureB64   string
}

// WelcomeMessage is signed with the new private key right after registration.
func WelcomeMessage(username string) string {
	return "Bem-vindo, " + username + "! Sua conta foi criada com sucesso."
}
