package db

import (
	"context"
	"time"
)

const queryCreateIdentity = `
INSERT INTO auth_identities (email, created_at)
VALUES ($1, $2)
`

func (s *DB) CreateIdentity(ctx context.Context, email string, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "CreateIdentity")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateIdentity, email, at)
	err = s.mapError(err)
	return err
}

const queryRevokeCredential = `
INSERT INTO auth_revoked_credentials (credential, revoked_at)
VALUES ($1, $2)
ON CONFLICT (credential) DO NOTHING
`

func (s *DB) RevokeCredential(ctx context.Context, credential string, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "RevokeCredential")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryRevokeCredential, credential, at)
	err = s.mapError(err)
	return err
}
