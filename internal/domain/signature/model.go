package signature

import "github.com/google/uuid"

// Signature is an immutable signed message. Value holds the base64 encoded signature
// bytes and Timestamp the signing time in seconds since the epoch.
type Signature struct {
	ID        uuid.UUID
	SignerID  uuid.UUID
	Text      string
	Value     string
	Timestamp int64
}

type Result struct {
	SignatureID  uuid.UUID
	SignatureB64 string
}
