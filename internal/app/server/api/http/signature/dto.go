package signature

type SignRequest struct {
	_ struct{} `additionalProperties:"true"`

	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty" doc:"Text to sign; its UTF-8 bytes are signed as is"`
}

type signInput struct {
	Body SignRequest
}

type signOutput struct {
	Status int
	Body   SignResponse
}

type SignResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	SignatureID  string `json:"signature_id,omitempty" format:"uuid"`
	SignatureB64 string `json:"signature_b64,omitempty"`
	Error        string `json:"error,omitempty"`
}
