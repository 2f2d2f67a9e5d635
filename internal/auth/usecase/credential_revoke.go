package usecase

import (
	"context"
	"log/slog"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

type RevokeCredentialInput struct {
	Credential string `validate:"required"`
}

// RevokeCredential blacklists a bearer credential. Revoking the same
// credential twice is a no-op, and the credential does not need to be
// valid to be revoked.
func (s *Usecase) RevokeCredential(ctx context.Context, in RevokeCredentialInput) error {
	ctx, span := s.startSpan(ctx, "RevokeCredential")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	now := s.clock.Now()
	if err := s.repoDB.RevokeCredential(ctx, in.Credential, now); err != nil {
		slog.ErrorContext(ctx, "failed to repo revoke credential", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoCache.MarkRevoked(ctx, in.Credential, s.credentialTTL()); err != nil {
		slog.WarnContext(ctx, "failed to cache revocation", "error", err)
	}

	// Best effort subject for the audit trail; a malformed credential
	// still gets revoked, just without a subject.
	subject, _ := s.codec.Verify(in.Credential)

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishCredentialRevoked(ctx, CredentialRevokedEvent{
			Subject:   subject,
			RevokedAt: now,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish credential revoked", "error", err)
		}
		return nil
	})

	return nil
}
