package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

type RegisterInput struct {
	Email string `validate:"required,email"`
}

// Register stores a new identity. The email is kept exactly as received,
// "User@x" and "user@x" are distinct identities.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()
	if err := s.repoDB.CreateIdentity(ctx, in.Email, now); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create identity", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
			Email:        in.Email,
			RegisteredAt: now,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered", "email", in.Email, "error", err)
		}
		return nil
	})

	return nil
}
