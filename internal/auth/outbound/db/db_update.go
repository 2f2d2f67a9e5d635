package db

import (
	"context"

	"github.com/aihoply/auth-email-otp/internal/auth/entity"
	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

const querySetChallenge = `
UPDATE auth_identities
SET otp_code = $2, otp_issued_at = $3
WHERE email = $1
`

// SetChallenge replaces the pending challenge for email. Returns
// goerror.ErrNotFound when the identity does not exist.
func (s *DB) SetChallenge(ctx context.Context, email string, ch entity.Challenge) (err error) {
	ctx, span := s.startSpan(ctx, "SetChallenge")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, querySetChallenge, email, ch.Code, ch.IssuedAt)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

const queryClearChallenge = `
UPDATE auth_identities
SET otp_code = NULL, otp_issued_at = NULL
WHERE email = $1
`

// ClearChallenge drops any pending challenge for email. Clearing an
// identity without a challenge is a no-op.
func (s *DB) ClearChallenge(ctx context.Context, email string) (err error) {
	ctx, span := s.startSpan(ctx, "ClearChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryClearChallenge, email)
	err = s.mapError(err)
	return err
}
