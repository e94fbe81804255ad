package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monetahq/moneta/internal/aggregator"
	httpapi "github.com/monetahq/moneta/internal/http"
	"github.com/monetahq/moneta/internal/service"
	"github.com/monetahq/moneta/internal/store"
	"github.com/monetahq/moneta/internal/store/sqlite"
	"github.com/monetahq/moneta/pkg/jwtx"
	"github.com/monetahq/moneta/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	sessions *jwtx.Sessions
	gateway  aggregator.Gateway

	// Services
	registrationService *service.RegistrationService
	userService         *service.UserService
	invitationService   *service.InvitationService
	accountService      *service.AccountService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "moneta-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.sessions = jwtx.NewSessions([]byte(cfg.SessionSecret), cfg.SessionIssuer, cfg.SessionTTL)

	app.initGateway()
	app.initServices()
	app.initHTTP()

	if app.cfg.AdminKey == "" {
		app.logger.Warn("no admin key configured; invitation management endpoints are disabled")
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("moneta api starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down moneta api...")

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

	app.logger.Info("moneta api stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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

// initGateway selects the aggregator implementation. Without a configured
// base URL the built-in mock serves canned data, which keeps local
// development working with no external account.
func (app *Application) initGateway() {
	if app.cfg.AggregatorBaseURL == "" {
		app.logger.Warn("no aggregator configured; serving mock financial data")
		app.gateway = &aggregator.Mock{}
		return
	}

	app.gateway = aggregator.NewClient(aggregator.Config{
		BaseURL:  app.cfg.AggregatorBaseURL,
		ClientID: app.cfg.AggregatorClientID,
		Secret:   app.cfg.AggregatorSecret,
	}, app.logger)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.registrationService = &service.RegistrationService{
		Store:    app.db,
		Sessions: app.sessions,
	}
	app.userService = &service.UserService{
		Store:    app.db,
		Sessions: app.sessions,
	}
	app.invitationService = &service.InvitationService{Store: app.db}
	app.accountService = &service.AccountService{
		Store:   app.db,
		Gateway: app.gateway,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.sessions,
		app.cfg.AdminKey,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.RegistrationService = app.registrationService
	router.UserService = app.userService
	router.InvitationService = app.invitationService
	router.AccountService = app.accountService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
