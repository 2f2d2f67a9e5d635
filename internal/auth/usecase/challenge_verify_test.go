package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

func registerAndRequest(t *testing.T, f *fixture, email string) {
	t.Helper()

	if err := f.uc.Register(context.Background(), RegisterInput{Email: email}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: email}); err != nil {
		t.Fatalf("RequestChallenge: %v", err)
	}
}

func TestVerifyChallenge(t *testing.T) {
	f := newFixture(t, "424242")
	registerAndRequest(t, f, "user@example.com")

	out, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	})
	if err != nil {
		t.Fatalf("VerifyChallenge: %v", err)
	}

	if out.TokenType != "bearer" {
		t.Fatalf("token type %q, want %q", out.TokenType, "bearer")
	}

	subject, err := f.codec.Verify(out.AccessToken)
	if err != nil {
		t.Fatalf("minted credential does not verify: %v", err)
	}
	if subject != "user@example.com" {
		t.Fatalf("credential subject %q, want %q", subject, "user@example.com")
	}
}

func TestVerifyChallengeSingleUse(t *testing.T) {
	f := newFixture(t, "424242")
	registerAndRequest(t, f, "user@example.com")

	if _, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	}); err != nil {
		t.Fatalf("VerifyChallenge: %v", err)
	}

	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	})
	assertBusiness(t, err, goerror.CodeNotFound)
}

func TestVerifyChallengeNoPendingCode(t *testing.T) {
	f := newFixture(t, "424242")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	})
	assertBusiness(t, err, goerror.CodeNotFound)
}

func TestVerifyChallengeUnknownEmail(t *testing.T) {
	f := newFixture(t, "424242")

	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "ghost@example.com",
		Code:  "424242",
	})
	assertBusiness(t, err, goerror.CodeNotFound)
}

func TestVerifyChallengeWrongCode(t *testing.T) {
	f := newFixture(t, "424242")
	registerAndRequest(t, f, "user@example.com")

	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "000000",
	})
	assertBusiness(t, err, goerror.CodeUnauthorized)

	// A mismatch leaves the challenge, the right code still works.
	if _, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	}); err != nil {
		t.Fatalf("VerifyChallenge after mismatch: %v", err)
	}
}

func TestVerifyChallengeCodeComparedExactly(t *testing.T) {
	f := newFixture(t, "042042")
	registerAndRequest(t, f, "user@example.com")

	// Same number, different string. Leading zeros matter.
	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "42042",
	})
	assertBusiness(t, err, goerror.CodeUnauthorized)
}

func TestVerifyChallengeExpired(t *testing.T) {
	f := newFixture(t, "424242")
	registerAndRequest(t, f, "user@example.com")

	f.clock.now = f.clock.now.Add(181 * time.Second)

	_, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	})
	assertBusiness(t, err, goerror.CodeUnauthorized)

	// Expiry consumes the challenge, the next attempt sees none at all.
	_, err = f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	})
	assertBusiness(t, err, goerror.CodeNotFound)
}

func TestVerifyChallengeAtTTLBoundary(t *testing.T) {
	f := newFixture(t, "424242")
	registerAndRequest(t, f, "user@example.com")

	// Exactly the TTL is still inside the window.
	f.clock.now = f.clock.now.Add(180 * time.Second)

	if _, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{
		Email: "user@example.com",
		Code:  "424242",
	}); err != nil {
		t.Fatalf("VerifyChallenge at boundary: %v", err)
	}
}
