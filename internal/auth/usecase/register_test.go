package usecase

import (
	"context"
	"testing"

	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
)

func TestRegister(t *testing.T) {
	f := newFixture(t, "123456")

	err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, ok := f.db.identities["user@example.com"]; !ok {
		t.Fatal("identity was not stored")
	}

	if err := f.manager.Wait(); err != nil {
		t.Fatalf("goroutine wait: %v", err)
	}
	if len(f.messaging.registered) != 1 || f.messaging.registered[0].Email != "user@example.com" {
		t.Fatalf("expected one registered event, got %+v", f.messaging.registered)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t, "123456")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"})
	assertBusiness(t, err, goerror.CodeConflict)
}

func TestRegisterKeepsEmailCase(t *testing.T) {
	f := newFixture(t, "123456")

	if err := f.uc.Register(context.Background(), RegisterInput{Email: "User@Example.com"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Case variants are distinct identities.
	if err := f.uc.Register(context.Background(), RegisterInput{Email: "user@example.com"}); err != nil {
		t.Fatalf("Register with different case: %v", err)
	}

	if _, ok := f.db.identities["User@Example.com"]; !ok {
		t.Fatal("email was not stored as received")
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	f := newFixture(t, "123456")

	for _, email := range []string{"", "not-an-email", "missing@tld@x"} {
		err := f.uc.Register(context.Background(), RegisterInput{Email: email})
		if err == nil {
			t.Fatalf("Register(%q) succeeded, want validation error", email)
		}
	}

	if len(f.db.identities) != 0 {
		t.Fatalf("invalid emails were stored: %v", f.db.identities)
	}
}
