package inbound

import (
	"github.com/aihoply/auth-email-otp/internal/auth/usecase"
	"github.com/aihoply/auth-email-otp/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the passwordless login workflow.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new identity from an email address.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// OTPRequest sends a fresh one-time code to a registered email address.
func (h *HTTPEndpoint) OTPRequest(r *router.Request) (any, error) {
	var req OTPRequestRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RequestChallenge(r.Context(), usecase.RequestChallengeInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return OTPRequestResponse{}, nil
}

// OTPVerify redeems a one-time code for a bearer credential.
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyChallenge(r.Context(), usecase.VerifyChallengeInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return OTPVerifyResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
	}, nil
}

// TokenCheck reports whether the bearer credential in the Authorization
// header is still valid and who it belongs to.
func (h *HTTPEndpoint) TokenCheck(r *router.Request) (any, error) {
	token, err := r.BearerToken()
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.CheckCredential(r.Context(), usecase.CheckCredentialInput{
		Credential: token,
	})
	if err != nil {
		return nil, err
	}

	return TokenCheckResponse{Email: resp.Subject}, nil
}

// Logout revokes the bearer credential in the Authorization header.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	token, err := r.BearerToken()
	if err != nil {
		return nil, err
	}

	if err := h.uc.RevokeCredential(r.Context(), usecase.RevokeCredentialInput{
		Credential: token,
	}); err != nil {
		return nil, err
	}

	return LogoutResponse{}, nil
}
