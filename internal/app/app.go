// Package app assembles the application: configuration, logging, the
// in-memory store, services, the facade, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/betacom-hq/backoffice/config"
	"github.com/betacom-hq/backoffice/internal/api"
	apphttp "github.com/betacom-hq/backoffice/internal/http"
	"github.com/betacom-hq/backoffice/internal/repository"
	"github.com/betacom-hq/backoffice/internal/service"
	"github.com/betacom-hq/backoffice/pkg/kv"
	"github.com/betacom-hq/backoffice/pkg/logger"
)

type App struct {
	config   *config.Config
	logger   logger.Logger
	store    *repository.MemoryStore
	storage  kv.Store
	services api.BackendServices
	backend  *api.Backend
	mux      *http.ServeMux
	server   *http.Server
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithStore sets a pre-built entity store, bypassing seeding
func WithStore(store *repository.MemoryStore) AppOption {
	return func(a *App) {
		a.store = store
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLogger(cfg.LogLevel)
	}
	return a
}

// Initialize wires every component. It is idempotent only in the sense
// that calling it twice replaces the previous wiring wholesale.
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Initializing application")

	if err := a.initStorage(); err != nil {
		return err
	}
	a.initStore()
	a.initBackend()
	a.initHandlers()
	a.initServer()

	return nil
}

func (a *App) initStorage() error {
	if a.config.Session.StoragePath == "" {
		a.storage = kv.NewMemoryStore()
		return nil
	}

	storage, err := kv.NewFileStore(a.config.Session.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	a.storage = storage
	a.logger.WithField("path", a.config.Session.StoragePath).Info("Session storage is file-backed")
	return nil
}

func (a *App) initStore() {
	if a.store != nil {
		return
	}
	a.store = repository.NewMemoryStore()
	if a.config.SeedDemoData {
		a.store.SeedDemoData()
		a.logger.Info("Demo data seeded")
	}
}

func (a *App) initBackend() {
	a.services = api.BackendServices{
		Auth: service.NewAuthService(service.AuthServiceConfig{
			CredentialRepo: a.store,
			ProfileRepo:    a.store,
			Storage:        a.storage,
			Logger:         a.logger,
			Secret:         a.config.Session.Secret,
			ExpirySeconds:  a.config.Session.ExpirySeconds,
		}),
		Users:       service.NewUserService(a.store, a.logger),
		Roles:       service.NewRoleService(a.store, a.logger),
		Departments: service.NewDepartmentService(a.store, a.logger),
		Shops:       service.NewShopService(a.store, a.logger),
		Reports:     service.NewReportService(a.store, a.logger),
		Exercises:   service.NewExerciseService(a.store, a.logger),
		Banners:     service.NewBannerService(a.store, a.logger),
	}
	a.backend = api.NewBackend(a.services)
}

func (a *App) initHandlers() {
	apphttp.NewAuthHandler(a.services.Auth, a.logger).RegisterRoutes(a.mux)
	apphttp.NewUserHandler(a.services.Users, a.logger).RegisterRoutes(a.mux)
	apphttp.NewRoleHandler(a.services.Roles, a.logger).RegisterRoutes(a.mux)
	apphttp.NewDepartmentHandler(a.services.Departments, a.logger).RegisterRoutes(a.mux)
	apphttp.NewShopHandler(a.services.Shops, a.logger).RegisterRoutes(a.mux)
	apphttp.NewReportHandler(a.services.Reports, a.logger).RegisterRoutes(a.mux)
	apphttp.NewExerciseHandler(a.services.Exercises, a.logger).RegisterRoutes(a.mux)
	apphttp.NewBannerHandler(a.services.Banners, a.logger).RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})
}

func (a *App) initServer() {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      apphttp.RequireAuth(a.backend.Auth, a.logger, a.mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Start runs the HTTP server until it is shut down.
func (a *App) Start() error {
	a.logger.WithField("addr", a.server.Addr).Info("Server listening")
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down")
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// GetMux exposes the route table, mainly for tests.
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// GetBackend exposes the facade, mainly for tests.
func (a *App) GetBackend() *api.Backend {
	return a.backend
}
