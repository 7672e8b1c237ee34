package client

// RegisterResult mirrors the body of a successful POST /api/register.
type RegisterResult struct {
	Message        string `json:"message"`
	Username       string `json:"username"`
	WelcomeMessage string `json:"welcome_message"`
	Signature      string `json:"signature"`
}

type SignResult struct {
	Message      string `json:"message"`
	SignatureID  string `json:"signature_id"`
	SignatureB64 string `json:"signature_b64"`
}

// VerifyRequest carries either SignatureID or the OriginalText and Signature pair.
type VerifyRequest struct {
	SignatureID  string `json:"signature_id,omitempty"`
	OriginalText string `json:"original_text,omitempty"`
	Signature    string `json:"signature,omitempty"`
}

type VerifyResult struct {
	IsValid          bool   `json:"is_valid"`
	Message          string `json:"message"`
	Signer           string `json:"signer,omitempty"`
	Algorithm        string `json:"algorithm,omitempty"`
	VerificationTime string `json:"verification_time,omitempty"`
}

// APIError is returned for every response with a 4xx or 5xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
