package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gonotes/internal/pkg/clock"
	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/goroutine"
	"github.com/shandysiswandi/gonotes/internal/pkg/hash"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/limiter"
	"github.com/shandysiswandi/gonotes/internal/pkg/mail"
	"github.com/shandysiswandi/gonotes/internal/pkg/otp"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
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
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	codes     otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	attempts  limiter.AttemptLimiter
	mail      mail.Mail

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
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
