package jwt

import (
	"errors"
	"time"
)

var (
	// ErrSigningKeyTooShort is returned when the HS256 signing key is less than 32 bytes.
	ErrSigningKeyTooShort = errors.New("HS256 signing key must be at least 32 bytes (256 bits)")

	// ErrInvalidCredential is returned for every credential that fails
	// verification: malformed, forged, or expired. Callers are given a
	// single kind on purpose so they cannot probe which check failed.
	ErrInvalidCredential = errors.New("invalid credential")
)

// Codec mints and verifies signed bearer credentials.
type Codec interface {
	// Mint creates a signed credential bound to the subject, expiring
	// after the configured TTL.
	Mint(subject string) (string, error)
	// Verify checks the credential and returns the bound subject.
	// Any failure yields ErrInvalidCredential.
	Verify(credential string) (string, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

// Config defines the inputs for building a Codec implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the credential issuer value.
	Issuer string
	// TTL is the credential time-to-live.
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates credential IDs.
	UUID generator
}
