package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/scholarsync/internal/scholar/http"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/mail"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/service"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store/drivers/mongo"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store/drivers/sqlite"
	"github.com/aussiebroadwan/scholarsync/pkg/cryptox"
	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/aussiebroadwan/scholarsync/pkg/otelx"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

const serviceName = "scholarsync"

// Application owns every long-lived dependency of the server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	signer        jwtx.Signer
	verifier      jwtx.Verifier
	mailer        mail.Mailer
	traceShutdown otelx.ShutdownFunc

	authService         *service.AuthService
	studentService      *service.StudentService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	ctx := context.Background()

	shutdown, err := otelx.Setup(ctx, otelx.Config{
		ServiceName:    serviceName,
		ServiceVersion: BuildVersion,
		Endpoint:       cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.traceShutdown = shutdown

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	mailer, err := mail.New(mail.Config{
		Driver:        cfg.MailDriver,
		From:          cfg.mailFrom(),
		SMTPHost:      cfg.SMTPHost,
		SMTPPort:      cfg.SMTPPort,
		Username:      cfg.EmailUser,
		Password:      cfg.EmailPass,
		ResendAPIKey:  cfg.ResendAPIKey,
		ResendBaseURL: cfg.ResendBaseURL,
	}, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}
	app.mailer = mailer

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("scholarsync starting",
		"port", app.cfg.Port,
		"store", app.cfg.StoreDriver,
		"mail", app.cfg.MailDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops background work and closes the
// store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down scholarsync...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.traceShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("scholarsync stopped")
	return nil
}

// initDatabase opens the configured store and applies its schema.
func (app *Application) initDatabase(ctx context.Context) error {
	switch app.cfg.StoreDriver {
	case StoreMongo:
		db, err := mongo.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("failed to connect to mongo: %w", err)
		}
		app.db = db
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initTokens builds the HS256 signer and verifier from JWT_SECRET.
func (app *Application) initTokens() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		secret = cryptox.MustRandomSecret(cryptox.SecretSize256)
		app.logger.Warn("JWT_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256("", []byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(secret), jwtx.VerifyOptions{
		Issuer: app.cfg.JWTIssuer,
		Leeway: 5 * time.Second,
	})
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Mailer:   app.mailer,
		Signer:   app.signer,
		Hasher:   cryptox.NewPasswordHasher(app.cfg.BcryptCost),
		Issuer:   app.cfg.JWTIssuer,
		OTPTTL:   app.cfg.OTPTTL,
		TokenTTL: app.cfg.JWTExpiresIn.Duration(),
	}
	app.studentService = &service.StudentService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.UnverifiedRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.cfg.CORSAllowedOrigins,
		app.logger,
	)

	router.AuthService = app.authService
	router.StudentService = app.studentService
	router.FrontendDir = app.cfg.FrontendDir
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
