package user

type RegisterRequest struct {
	_ struct{} `additionalProperties:"true"`

	Username string `json:"username,omitempty" doc:"Unique username, 1 to 255 characters after trimming"`
}

type registerInput struct {
	Body RegisterRequest
}

type registerOutput struct {
	Status int
	Body   RegisterResponse
}

type RegisterResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	Username       string `json:"username,omitempty"`
	WelcomeMessage string `json:"welcome_message,omitempty"`
	Signature      string `json:"signature,omitempty" doc:"Base64 signature of welcome_message"`
	Error          string `json:"error,omitempty"`
}
