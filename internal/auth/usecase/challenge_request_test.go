package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

func TestRequestChallenge(t *testing.T) {
	f := newFixture(t, "424242")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("RequestChallenge: %v", err)
	}

	ch, ok := f.db.challenge("user@example.com")
	if !ok {
		t.Fatal("challenge was not stored")
	}
	if ch.Code != "424242" {
		t.Fatalf("stored code %q, want %q", ch.Code, "424242")
	}
	if !ch.IssuedAt.Equal(f.clock.Now()) {
		t.Fatalf("stored issued at %v, want %v", ch.IssuedAt, f.clock.Now())
	}

	if len(f.notifier.sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(f.notifier.sent))
	}
	if f.notifier.sent[0].email != "user@example.com" || f.notifier.sent[0].code != "424242" {
		t.Fatalf("unexpected mail: %+v", f.notifier.sent[0])
	}
}

func TestRequestChallengeUnknownEmail(t *testing.T) {
	f := newFixture(t, "424242")

	err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: "ghost@example.com"})
	assertBusiness(t, err, goerror.CodeNotFound)

	if len(f.notifier.sent) != 0 {
		t.Fatalf("mail sent for unknown email: %+v", f.notifier.sent)
	}
}

func TestRequestChallengeReplacesPendingCode(t *testing.T) {
	f := newFixture(t, "111111")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("RequestChallenge: %v", err)
	}

	f.uc.otp = fakeOTP{code: "222222"}
	if err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("second RequestChallenge: %v", err)
	}

	ch, _ := f.db.challenge("user@example.com")
	if ch.Code != "222222" {
		t.Fatalf("pending code %q, want the replacement %q", ch.Code, "222222")
	}

	// Only the latest code redeems.
	if _, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{Email: "user@example.com", Code: "111111"}); err == nil {
		t.Fatal("replaced code was accepted")
	}
	if _, err := f.uc.VerifyChallenge(context.Background(), VerifyChallengeInput{Email: "user@example.com", Code: "222222"}); err != nil {
		t.Fatalf("VerifyChallenge with replacement code: %v", err)
	}
}

func TestRequestChallengeDeliveryFailure(t *testing.T) {
	f := newFixture(t, "424242")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	f.notifier.err = errors.New("smtp: connection refused")
	err := f.uc.RequestChallenge(context.Background(), RequestChallengeInput{Email: "user@example.com"})
	assertBusiness(t, err, goerror.CodeUnavailable)

	// The stored challenge survives the failed delivery.
	ch, ok := f.db.challenge("user@example.com")
	if !ok || ch.Code != "424242" {
		t.Fatalf("challenge not kept after delivery failure: %+v ok=%v", ch, ok)
	}
}
