package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/fitnesslabs/fittrack/internal/tracker/http"
	"github.com/fitnesslabs/fittrack/internal/tracker/service"
	"github.com/fitnesslabs/fittrack/internal/tracker/store"
	"github.com/fitnesslabs/fittrack/internal/tracker/store/drivers/sqlite"
	"github.com/fitnesslabs/fittrack/pkg/cryptox"
	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the tracker service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	authService      *service.AuthService
	clientService    *service.ClientService
	foodService      *service.FoodService
	bootstrapService *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "tracker-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, verifier, err := app.initTokenKeys()
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices(signer)
	app.initHTTP(verifier)

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Seed the admin account before accepting traffic
	ctx := slogx.WithContext(context.Background(), app.logger)
	if _, err := app.bootstrapService.EnsureAdmin(
		ctx, app.cfg.AdminUsername, app.cfg.AdminPassword,
	); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	app.logger.Info("tracker service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down tracker service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("tracker service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initTokenKeys builds the HS256 signer and verifier pair. An explicit
// secret survives restarts; the generated fallback invalidates all tokens
// whenever the process restarts, so it is only suitable for development.
func (app *Application) initTokenKeys() (jwtx.Signer, jwtx.Verifier, error) {
	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, nil, fmt.Errorf("generate ephemeral secret: %w", err)
		}
		app.logger.Warn("TRACKER_JWT_SECRET not set, using an ephemeral secret; " +
			"all tokens are invalidated on restart")
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret, app.cfg.Issuer)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize verifier: %w", err)
	}
	return signer, verifier, nil
}

// initServices initializes all business logic services
func (app *Application) initServices(signer jwtx.Signer) {
	app.authService = &service.AuthService{
		Signer:    signer,
		Store:     app.db,
		Issuer:    app.cfg.Issuer,
		AccessTTL: jwtx.DefaultAccessTokenTTL,
	}
	app.clientService = &service.ClientService{Store: app.db}
	app.foodService = &service.FoodService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP(verifier jwtx.Verifier) {
	router := httpapi.NewRouter(
		verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ClientService = app.clientService
	router.FoodService = app.foodService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
