package verification

type VerifyRequest struct {
	_ struct{} `additionalProperties:"true"`

	SignatureID  string `json:"signature_id,omitempty" doc:"Id of a stored signature; takes precedence over original_text and signature"`
	OriginalText string `json:"original_text,omitempty"`
	Signature    string `json:"signature,omitempty" doc:"Base64 signature of original_text"`
}

type verifyInput struct {
	Body VerifyRequest
}

type verifyOutput struct {
	Status int
	Body   VerifyResponse
}

type VerifyResponse struct {
	IsValid          bool   `json:"is_valid"`
	Message          string `json:"message"`
	Signer           string `json:"signer,omitempty"`
	Algorithm        string `json:"algorithm,omitempty"`
	VerificationTime string `json:"verification_time,omitempty" example:"2024-05-01 09:30:00"`
}
