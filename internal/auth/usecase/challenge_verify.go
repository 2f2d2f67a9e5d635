package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

type VerifyChallengeInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required"`
}

type VerifyChallengeOutput struct {
	AccessToken string
	TokenType   string
}

// VerifyChallenge redeems a pending one-time code for a bearer credential.
// A matching code is single-use: it is cleared before the credential is
// minted. A mismatched code leaves the challenge in place.
func (s *Usecase) VerifyChallenge(ctx context.Context, in VerifyChallengeInput) (*VerifyChallengeOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyChallenge")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	// One clock read per attempt so the expiry decision cannot straddle
	// the TTL boundary mid-request.
	now := s.clock.Now()

	ch, err := s.repoDB.GetChallenge(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("No active one-time code", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo get challenge", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if ch == nil {
		return nil, goerror.NewBusiness("No active one-time code", goerror.CodeNotFound)
	}

	if now.Sub(ch.IssuedAt) > s.codeTTL() {
		if err := s.repoDB.ClearChallenge(ctx, in.Email); err != nil {
			slog.ErrorContext(ctx, "failed to repo clear expired challenge", "email", in.Email, "error", err)
			return nil, goerror.NewServer(err)
		}
		return nil, goerror.NewBusiness("One-time code expired", goerror.CodeUnauthorized)
	}

	if in.Code != ch.Code {
		return nil, goerror.NewBusiness("One-time code is incorrect", goerror.CodeUnauthorized)
	}

	if err := s.repoDB.ClearChallenge(ctx, in.Email); err != nil {
		slog.ErrorContext(ctx, "failed to repo clear challenge", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.codec.Mint(in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to mint credential", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyChallengeOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
