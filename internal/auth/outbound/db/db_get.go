package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/aihoply/auth-email-otp/internal/auth/entity"
)

const queryGetChallenge = `
SELECT otp_code, otp_issued_at
FROM auth_identities
WHERE email = $1
`

// GetChallenge returns the pending challenge for email, or nil when the
// identity exists but has no pending code.
func (s *DB) GetChallenge(ctx context.Context, email string) (_ *entity.Challenge, err error) {
	ctx, span := s.startSpan(ctx, "GetChallenge")
	defer func() { s.endSpan(span, err) }()

	var code pgtype.Text
	var issuedAt pgtype.Timestamptz
	if err = s.conn.QueryRow(ctx, queryGetChallenge, email).Scan(&code, &issuedAt); err != nil {
		return nil, s.mapError(err)
	}

	if !code.Valid || !issuedAt.Valid {
		return nil, nil
	}

	return &entity.Challenge{
		Code:     code.String,
		IssuedAt: issuedAt.Time,
	}, nil
}

const queryIsCredentialRevoked = `
SELECT EXISTS (
	SELECT 1 FROM auth_revoked_credentials WHERE credential = $1
)
`

func (s *DB) IsCredentialRevoked(ctx context.Context, credential string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "IsCredentialRevoked")
	defer func() { s.endSpan(span, err) }()

	var revoked bool
	if err = s.conn.QueryRow(ctx, queryIsCredentialRevoked, credential).Scan(&revoked); err != nil {
		return false, s.mapError(err)
	}

	return revoked, nil
}
