package jwt

import (
	"errors"
	"testing"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fixedUUID struct{}

func (fixedUUID) Generate() string {
	return "0191b3a6-0000-7000-8000-000000000000"
}

func newTestCodec(t *testing.T, clk *fixedClock) *Symmetric {
	t.Helper()

	codec, err := NewHS256(Config{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "auth-test",
		TTL:    30 * time.Minute,
		Clock:  clk,
		UUID:   fixedUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS256: %v", err)
	}

	return codec
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := NewHS256(Config{
		Secret: []byte("too-short"),
		Clock:  &fixedClock{now: time.Now()},
		UUID:   fixedUUID{},
	})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestMintVerifyRoundTrip(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	cred, err := codec.Mint("user@example.com")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	subject, err := codec.Verify(cred)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "user@example.com" {
		t.Fatalf("Verify returned subject %q, want %q", subject, "user@example.com")
	}
}

func TestVerifyExpired(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	cred, err := codec.Mint("user@example.com")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	clk.now = clk.now.Add(31 * time.Minute)

	if _, err := codec.Verify(cred); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for expired credential, got %v", err)
	}
}

func TestVerifyStillValidJustBeforeExpiry(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	cred, err := codec.Mint("user@example.com")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	clk.now = clk.now.Add(29 * time.Minute)

	if _, err := codec.Verify(cred); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	other, err := NewHS256(Config{
		Secret: []byte("ffffffffffffffffffffffffffffffff"),
		Issuer: "auth-test",
		TTL:    30 * time.Minute,
		Clock:  clk,
		UUID:   fixedUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS256: %v", err)
	}

	cred, err := other.Mint("user@example.com")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	if _, err := codec.Verify(cred); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for forged credential, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	for _, cred := range []string{"", "garbage", "a.b.c"} {
		if _, err := codec.Verify(cred); !errors.Is(err, ErrInvalidCredential) {
			t.Fatalf("Verify(%q) = %v, want ErrInvalidCredential", cred, err)
		}
	}
}

func TestVerifyTampered(t *testing.T) {
	clk := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clk)

	cred, err := codec.Mint("user@example.com")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	tampered := cred[:len(cred)-2] + "xx"
	if _, err := codec.Verify(tampered); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for tampered credential, got %v", err)
	}
}
