package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/aihoply/auth-email-otp/internal/auth/inbound"
	"github.com/aihoply/auth-email-otp/internal/auth/outbound/cache"
	"github.com/aihoply/auth-email-otp/internal/auth/outbound/db"
	"github.com/aihoply/auth-email-otp/internal/auth/outbound/mailer"
	"github.com/aihoply/auth-email-otp/internal/auth/outbound/mq"
	"github.com/aihoply/auth-email-otp/internal/auth/usecase"
	"github.com/aihoply/auth-email-otp/internal/pkg/clock"
	"github.com/aihoply/auth-email-otp/internal/pkg/config"
	"github.com/aihoply/auth-email-otp/internal/pkg/goroutine"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/jwt"
	"github.com/aihoply/auth-email-otp/internal/pkg/mail"
	"github.com/aihoply/auth-email-otp/internal/pkg/messaging"
	"github.com/aihoply/auth-email-otp/internal/pkg/otp"
	"github.com/aihoply/auth-email-otp/internal/pkg/router"
	"github.com/aihoply/auth-email-otp/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Codec      jwt.Codec                  `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	cacheAuth := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	notifier := mailer.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoCache:     cacheAuth,
		RepoMessaging: repoMsg,
		Notifier:      notifier,
		Validator:     dep.Validator,
		Config:        dep.Config,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		Codec:         dep.Codec,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
