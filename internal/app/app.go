package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/aihoply/auth-email-otp/internal/pkg/clock"
	"github.com/aihoply/auth-email-otp/internal/pkg/config"
	"github.com/aihoply/auth-email-otp/internal/pkg/goroutine"
	"github.com/aihoply/auth-email-otp/internal/pkg/instrument"
	"github.com/aihoply/auth-email-otp/internal/pkg/jwt"
	"github.com/aihoply/auth-email-otp/internal/pkg/mail"
	"github.com/aihoply/auth-email-otp/internal/pkg/messaging"
	"github.com/aihoply/auth-email-otp/internal/pkg/otp"
	"github.com/aihoply/auth-email-otp/internal/pkg/router"
	"github.com/aihoply/auth-email-otp/internal/pkg/uid"
	"github.com/aihoply/auth-email-otp/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	otp       otp.Generator
	codec     jwt.Codec

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	mail      mail.Mail
	messaging messaging.Publisher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initCodec()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
