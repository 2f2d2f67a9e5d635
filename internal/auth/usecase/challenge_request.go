package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aihoply/auth-email-otp/internal/auth/entity"
	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

type RequestChallengeInput struct {
	Email string `validate:"required,email"`
}

// RequestChallenge generates a one-time code for a registered identity and
// emails it. A new code unconditionally replaces any pending one.
func (s *Usecase) RequestChallenge(ctx context.Context, in RequestChallengeInput) error {
	ctx, span := s.startSpan(ctx, "RequestChallenge")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	code := s.otp.Generate(s.codeLength())
	issuedAt := s.clock.Now()

	if err := s.repoDB.SetChallenge(ctx, in.Email, entity.Challenge{Code: code, IssuedAt: issuedAt}); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Email not registered", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo set challenge", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	// The stored challenge survives a delivery failure, so a later retry
	// may still redeem the code if the email eventually arrived.
	if err := s.notifier.SendCode(ctx, in.Email, code); err != nil {
		slog.ErrorContext(ctx, "failed to send one-time code", "email", in.Email, "error", err)
		return goerror.NewBusiness("Failed to deliver one-time code", goerror.CodeUnavailable)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishChallengeIssued(ctx, ChallengeIssuedEvent{
			Email:    in.Email,
			IssuedAt: issuedAt,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish challenge issued", "email", in.Email, "error", err)
		}
		return nil
	})

	return nil
}
