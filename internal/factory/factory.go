// Package factory wires the application's components together from
// configuration. Binaries and tests build the whole app through here so
// every entry point shares the same dependency graph.
package factory

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/guessparty/guessparty/internal/api"
	"github.com/guessparty/guessparty/internal/dependencies/clock"
	"github.com/guessparty/guessparty/internal/dependencies/random"
	"github.com/guessparty/guessparty/internal/services/identity"
	"github.com/guessparty/guessparty/internal/services/session"
	"github.com/guessparty/guessparty/internal/storage"
	"github.com/guessparty/guessparty/internal/storage/memory"
	redisstorage "github.com/guessparty/guessparty/internal/storage/redis"
	"github.com/guessparty/guessparty/internal/transport/sse"
)

// StorageType selects the storage backend
type StorageType string

const (
	StorageTypeMemory StorageType = "memory"
	StorageTypeRedis  StorageType = "redis"
)

// Config holds everything needed to assemble an App
type Config struct {
	Logger      *slog.Logger
	StorageType StorageType
	Redis       redisstorage.Config
	Session     session.Config
}

// App is the assembled application
type App struct {
	Storage     storage.Storage
	Sessions    *session.Controller
	Identities  *identity.Service
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
	Router      http.Handler

	closers []func() error
}

// New assembles an App from configuration
func New(cfg Config) (*App, error) {
	var store storage.Storage
	var closers []func() error

	switch cfg.StorageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		rs, err := redisstorage.New(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = rs
		closers = append(closers, rs.Close)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}

	app := newWithDependencies(cfg, store, clock.New(), random.New())
	app.closers = closers
	return app, nil
}

// newWithDependencies assembles an App around explicit dependencies
func newWithDependencies(cfg Config, store storage.Storage, clk clock.Clock, rnd random.Random) *App {
	hubManager := sse.NewHubManager(cfg.Logger)
	broadcaster := sse.NewBroadcaster(hubManager, cfg.Logger)
	sessions := session.NewController(store, clk, rnd, broadcaster, cfg.Session, cfg.Logger)
	identities := identity.New(store, clk, cfg.Logger)

	router := api.NewRouter(api.RouterConfig{
		Logger:      cfg.Logger,
		Sessions:    sessions,
		Identities:  identities,
		HubManager:  hubManager,
		Broadcaster: broadcaster,
		SessionCfg:  cfg.Session,
	})

	return &App{
		Storage:     store,
		Sessions:    sessions,
		Identities:  identities,
		HubManager:  hubManager,
		Broadcaster: broadcaster,
		Router:      router,
	}
}

// Close releases the app's resources: round timers and storage connections
func (a *App) Close() error {
	a.Sessions.Close()

	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
