package inbound

type RegisterRequest struct {
	Email string `json:"email"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration successful. You can now request a one-time code."
}

type OTPRequestRequest struct {
	Email string `json:"email"`
}

type OTPRequestResponse struct{}

func (OTPRequestResponse) Message() string {
	return "A one-time code has been sent to your email."
}

type OTPVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type OTPVerifyResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type TokenCheckResponse struct {
	Email string `json:"email"`
}

func (TokenCheckResponse) Message() string {
	return "Credential is valid."
}

type LogoutResponse struct{}

func (LogoutResponse) Message() string {
	return "Logged out successfully."
}
