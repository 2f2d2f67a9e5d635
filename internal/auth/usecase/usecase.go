package usecase

import (
	"context"
	"time"

	"github.com/aihoply/auth-email-otp/internal/auth/entity"
	"github.com/aihoply/auth-email-otp/internal/pkg/clock"
	"github.com/aihoply/auth-email-otp/internal/pkg/config"
	"github.com/aihoply/auth-email-otp/internal/pkg/goroutine"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/jwt"
	"github.com/aihoply/auth-email-otp/internal/pkg/otp"
	"github.com/aihoply/auth-email-otp/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	Email        string
	RegisteredAt time.Time
}

type ChallengeIssuedEvent struct {
	Email    string
	IssuedAt time.Time
}

type CredentialRevokedEvent struct {
	Subject   string
	RevokedAt time.Time
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
	PublishChallengeIssued(ctx context.Context, msg ChallengeIssuedEvent) error
	PublishCredentialRevoked(ctx context.Context, msg CredentialRevokedEvent) error
}

type repoDB interface {
	CreateIdentity(ctx context.Context, email string, at time.Time) error
	SetChallenge(ctx context.Context, email string, ch entity.Challenge) error
	GetChallenge(ctx context.Context, email string) (*entity.Challenge, error)
	ClearChallenge(ctx context.Context, email string) error

	RevokeCredential(ctx context.Context, credential string, at time.Time) error
	IsCredentialRevoked(ctx context.Context, credential string) (bool, error)
}

// repoCache caches positive revocations only. A miss means "not known
// revoked", never "valid".
type repoCache interface {
	IsRevoked(ctx context.Context, credential string) (bool, error)
	MarkRevoked(ctx context.Context, credential string, ttl time.Duration) error
}

type notifier interface {
	SendCode(ctx context.Context, email, code string) error
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoMessaging repoMessaging
	notifier      notifier
	validator     validator.Validator
	cfg           config.Config
	otp           otp.Generator
	clock         clock.Clocker
	codec         jwt.Codec
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoMessaging repoMessaging
	Notifier      notifier
	Validator     validator.Validator
	Config        config.Config
	OTP           otp.Generator
	Clock         clock.Clocker
	Codec         jwt.Codec
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoMessaging: dep.RepoMessaging,
		notifier:      dep.Notifier,
		validator:     dep.Validator,
		cfg:           dep.Config,
		otp:           dep.OTP,
		clock:         dep.Clock,
		codec:         dep.Codec,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func (s *Usecase) codeLength() int {
	if n := s.cfg.GetInt("modules.auth.otp_length"); n > 0 {
		return n
	}
	return otp.DefaultLength
}

func (s *Usecase) codeTTL() time.Duration {
	if d := s.cfg.GetSecond("modules.auth.otp_ttl_seconds"); d > 0 {
		return d
	}
	return 180 * time.Second
}

func (s *Usecase) credentialTTL() time.Duration {
	if d := s.cfg.GetMinute("modules.auth.credential_ttl_minutes"); d > 0 {
		return d
	}
	return 30 * time.Minute
}
