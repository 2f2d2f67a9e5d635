package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestRevokeCredential(t *testing.T) {
	f := newFixture(t, "424242")
	cred := mintCredential(t, f, "user@example.com")

	if err := f.uc.RevokeCredential(context.Background(), RevokeCredentialInput{Credential: cred}); err != nil {
		t.Fatalf("RevokeCredential: %v", err)
	}

	if ok, _ := f.db.IsCredentialRevoked(context.Background(), cred); !ok {
		t.Fatal("credential was not revoked in the database")
	}
	if ok, _ := f.cache.IsRevoked(context.Background(), cred); !ok {
		t.Fatal("credential was not cached as revoked")
	}

	if err := f.manager.Wait(); err != nil {
		t.Fatalf("goroutine wait: %v", err)
	}
	if len(f.messaging.revoked) != 1 || f.messaging.revoked[0].Subject != "user@example.com" {
		t.Fatalf("expected one revoked event with subject, got %+v", f.messaging.revoked)
	}
}

func TestRevokeCredentialIdempotent(t *testing.T) {
	f := newFixture(t, "424242")
	cred := mintCredential(t, f, "user@example.com")

	if err := f.uc.RevokeCredential(context.Background(), RevokeCredentialInput{Credential: cred}); err != nil {
		t.Fatalf("RevokeCredential: %v", err)
	}
	if err := f.uc.RevokeCredential(context.Background(), RevokeCredentialInput{Credential: cred}); err != nil {
		t.Fatalf("second RevokeCredential: %v", err)
	}
}

func TestRevokeCredentialAcceptsInvalid(t *testing.T) {
	f := newFixture(t, "424242")

	if err := f.uc.RevokeCredential(context.Background(), RevokeCredentialInput{Credential: "garbage"}); err != nil {
		t.Fatalf("RevokeCredential: %v", err)
	}

	if ok, _ := f.db.IsCredentialRevoked(context.Background(), "garbage"); !ok {
		t.Fatal("invalid credential was not revoked")
	}
}

func TestRevokeCredentialCacheFailureTolerated(t *testing.T) {
	f := newFixture(t, "424242")
	cred := mintCredential(t, f, "user@example.com")

	f.cache.setErr = errors.New("redis: connection refused")

	if err := f.uc.RevokeCredential(context.Background(), RevokeCredentialInput{Credential: cred}); err != nil {
		t.Fatalf("RevokeCredential with broken cache: %v", err)
	}

	// The database blacklist is authoritative.
	if ok, _ := f.db.IsCredentialRevoked(context.Background(), cred); !ok {
		t.Fatal("credential was not revoked in the database")
	}
}
