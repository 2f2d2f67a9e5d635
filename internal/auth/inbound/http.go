package inbound

import (
	"context"

	"github.com/aihoply/auth-email-otp/internal/auth/usecase"
	"github.com/aihoply/auth-email-otp/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	RequestChallenge(ctx context.Context, in usecase.RequestChallengeInput) error
	VerifyChallenge(ctx context.Context, in usecase.VerifyChallengeInput) (*usecase.VerifyChallengeOutput, error)

	CheckCredential(ctx context.Context, in usecase.CheckCredentialInput) (*usecase.CheckCredentialOutput, error)
	RevokeCredential(ctx context.Context, in usecase.RevokeCredentialInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration & one-time codes
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/otp/request", end.OTPRequest)
	r.POST("/api/v1/auth/otp/verify", end.OTPVerify)

	// Bearer credentials
	r.GET("/api/v1/auth/token/check", end.TokenCheck)
	r.POST("/api/v1/auth/logout", end.Logout)
}
