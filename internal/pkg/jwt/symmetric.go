package jwt

import (
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

// Symmetric implements Codec using an HMAC secret and HS256.
type Symmetric struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clocker
	uuid   generator
}

// NewHS256 constructs a Symmetric codec implementation using HS256.
func NewHS256(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < 32 {
		return nil, ErrSigningKeyTooShort
	}

	return &Symmetric{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
	}, nil
}

// Mint creates a signed credential bound to the subject.
func (s *Symmetric) Mint(subject string) (string, error) {
	now := s.clock.Now()

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS256, libJWT.RegisteredClaims{
			ID:        s.uuid.Generate(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  libJWT.NewNumericDate(now),
			NotBefore: libJWT.NewNumericDate(now),
			ExpiresAt: libJWT.NewNumericDate(now.Add(s.ttl)),
		}).
		SignedString(s.secret)
}

// Verify parses and validates a credential string and returns its subject.
//
// Structural, signature, and expiry failures all collapse into
// ErrInvalidCredential.
func (s *Symmetric) Verify(credential string) (string, error) {
	var claims libJWT.RegisteredClaims

	token, err := libJWT.ParseWithClaims(credential, &claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS256 {
				return nil, ErrInvalidCredential
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS256.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
		libJWT.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidCredential
	}

	return claims.Subject, nil
}
