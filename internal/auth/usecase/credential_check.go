package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
	"github.com/aihoply/auth-email-otp/internal/pkg/jwt"
)

type CheckCredentialInput struct {
	Credential string `validate:"required"`
}

type CheckCredentialOutput struct {
	Subject string
}

// CheckCredential validates a bearer credential and returns its subject.
// The revocation list is consulted before the signature is checked, so a
// revoked credential is rejected even when it would not parse.
func (s *Usecase) CheckCredential(ctx context.Context, in CheckCredentialInput) (*CheckCredentialOutput, error) {
	ctx, span := s.startSpan(ctx, "CheckCredential")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	revoked, err := s.repoCache.IsRevoked(ctx, in.Credential)
	if err != nil {
		// Cache trouble degrades to a database lookup.
		slog.WarnContext(ctx, "revocation cache lookup failed", "error", err)
		revoked = false
	}

	if !revoked {
		revoked, err = s.repoDB.IsCredentialRevoked(ctx, in.Credential)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo check revocation", "error", err)
			return nil, goerror.NewServer(err)
		}
		if revoked {
			if err := s.repoCache.MarkRevoked(ctx, in.Credential, s.credentialTTL()); err != nil {
				slog.WarnContext(ctx, "failed to backfill revocation cache", "error", err)
			}
		}
	}

	if revoked {
		return nil, goerror.NewBusiness("Credential has been revoked", goerror.CodeUnauthorized)
	}

	subject, err := s.codec.Verify(in.Credential)
	if err != nil {
		if !errors.Is(err, jwt.ErrInvalidCredential) {
			slog.ErrorContext(ctx, "failed to verify credential", "error", err)
		}
		return nil, goerror.NewBusiness("Invalid or expired credential", goerror.CodeUnauthorized)
	}

	return &CheckCredentialOutput{Subject: subject}, nil
}
