package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aihoply/auth-email-otp/internal/auth/entity"
	"github.com/aihoply/auth-email-otp/internal/pkg/config"
	"github.com/aihoply/auth-email-otp/internal/pkg/goerror"
	"github.com/aihoply/auth-email-otp/internal/pkg/goroutine"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/jwt"
	"github.com/aihoply/auth-email-otp/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  auth:
    otp_length: 6
    otp_ttl_seconds: 180
    credential_ttl_minutes: 30
`

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeUUID struct{}

func (fakeUUID) Generate() string {
	return "0191b3a6-0000-7000-8000-000000000000"
}

type fakeOTP struct {
	code string
}

func (g fakeOTP) Generate(int) string {
	return g.code
}

type fakeDB struct {
	mu         sync.Mutex
	identities map[string]time.Time
	challenges map[string]entity.Challenge
	revoked    map[string]time.Time

	setErr       error
	getErr       error
	clearErr     error
	revokeErr    error
	isRevokedErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		identities: make(map[string]time.Time),
		challenges: make(map[string]entity.Challenge),
		revoked:    make(map[string]time.Time),
	}
}

func (f *fakeDB) CreateIdentity(_ context.Context, email string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.identities[email]; ok {
		return goerror.ErrConflict
	}
	f.identities[email] = at
	return nil
}

func (f *fakeDB) SetChallenge(_ context.Context, email string, ch entity.Challenge) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return f.setErr
	}
	if _, ok := f.identities[email]; !ok {
		return goerror.ErrNotFound
	}
	f.challenges[email] = ch
	return nil
}

func (f *fakeDB) GetChallenge(_ context.Context, email string) (*entity.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	if _, ok := f.identities[email]; !ok {
		return nil, goerror.ErrNotFound
	}
	ch, ok := f.challenges[email]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

func (f *fakeDB) ClearChallenge(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.challenges, email)
	return nil
}

func (f *fakeDB) RevokeCredential(_ context.Context, credential string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.revokeErr != nil {
		return f.revokeErr
	}
	if _, ok := f.revoked[credential]; !ok {
		f.revoked[credential] = at
	}
	return nil
}

func (f *fakeDB) IsCredentialRevoked(_ context.Context, credential string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.isRevokedErr != nil {
		return false, f.isRevokedErr
	}
	_, ok := f.revoked[credential]
	return ok, nil
}

func (f *fakeDB) challenge(email string) (entity.Challenge, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch, ok := f.challenges[email]
	return ch, ok
}

type fakeCache struct {
	mu      sync.Mutex
	revoked map[string]time.Duration

	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{revoked: make(map[string]time.Duration)}
}

func (f *fakeCache) IsRevoked(_ context.Context, credential string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return false, f.getErr
	}
	_, ok := f.revoked[credential]
	return ok, nil
}

func (f *fakeCache) MarkRevoked(_ context.Context, credential string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setErr != nil {
		return f.setErr
	}
	f.revoked[credential] = ttl
	return nil
}

type sentMail struct {
	email string
	code  string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeNotifier) SendCode(_ context.Context, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{email: email, code: code})
	return nil
}

type fakeMessaging struct {
	mu         sync.Mutex
	registered []UserRegisteredEvent
	issued     []ChallengeIssuedEvent
	revoked    []CredentialRevokedEvent
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, msg)
	return nil
}

func (f *fakeMessaging) PublishChallengeIssued(_ context.Context, msg ChallengeIssuedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = append(f.issued, msg)
	return nil
}

func (f *fakeMessaging) PublishCredentialRevoked(_ context.Context, msg CredentialRevokedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, msg)
	return nil
}

type fixture struct {
	uc        *Usecase
	db        *fakeDB
	cache     *fakeCache
	notifier  *fakeNotifier
	messaging *fakeMessaging
	clock     *fakeClock
	manager   *goroutine.Manager
	codec     jwt.Codec
}

func newFixture(t *testing.T, code string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("config.NewViperFromBytes: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("validator.NewV10Validator: %v", err)
	}

	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	codec, err := jwt.NewHS256(jwt.Config{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "auth-test",
		TTL:    30 * time.Minute,
		Clock:  clk,
		UUID:   fakeUUID{},
	})
	if err != nil {
		t.Fatalf("jwt.NewHS256: %v", err)
	}

	db := newFakeDB()
	cache := newFakeCache()
	notifier := &fakeNotifier{}
	msgr := &fakeMessaging{}
	manager := goroutine.NewManager(8)

	uc := New(Dependency{
		RepoDB:        db,
		RepoCache:     cache,
		RepoMessaging: msgr,
		Notifier:      notifier,
		Validator:     v10,
		Config:        cfg,
		OTP:           fakeOTP{code: code},
		Clock:         clk,
		Codec:         codec,
		Instrument:    instrument.NewNoop(),
		Goroutine:     manager,
	})

	return &fixture{
		uc:        uc,
		db:        db,
		cache:     cache,
		notifier:  notifier,
		messaging: msgr,
		clock:     clk,
		manager:   manager,
		codec:     codec,
	}
}

func assertBusiness(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %v", err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %v, got %v (message %q)", code, gerr.Code(), gerr.Msg())
	}
}
