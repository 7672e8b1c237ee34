package verification

import "github.com/google/uuid"

const (
	Algorithm     = "SHA-256 + RSA"
	UnknownSigner = "Desconhecido"

	ReasonByID     = "Verificação por ID da assinatura"
	ReasonNotFound = "ID da assinatura não encontrado"
	ReasonOffline  = "Verificação offline"

	MessageValid   = "Assinatura VÁLIDA."
	MessageInvalid = "Assinatura INVÁLIDA."
)

type Mode string

const (
	ModeByID    Mode = "by_id"
	ModeOffline Mode = "offline"
)

// Log is the append-only audit entry written once per verification attempt.
// SignatureID is nil for offline checks and for unknown ids.
type Log struct {
	ID          uuid.UUID
	SignatureID *uuid.UUID
	IsValid     bool
	Reason      string
	Timestamp   int64
}

type Request struct {
	SignatureID  string
	OriginalText string
	SignatureB64 string
}

// Outcome is the internal verdict of a signature check. Reason explains a rejection
// and only ever reaches the logs.
type Outcome struct {
	Valid  bool
	Reason string
}

// Result is reported to the caller. Timestamp is the signing time for by-id checks
// and the verification time for offline ones, in epoch seconds.
type Result struct {
	Mode      Mode
	IsValid   bool
	Message   string
	Signer    string
	Algorithm string
	Timestamp int64
}

func verdict(valid bool) string {
	if valid {
		return MessageValid
	}
	return MessageInvalid
}
