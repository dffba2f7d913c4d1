package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guessparty/guessparty/internal/api/apierr"
	"github.com/guessparty/guessparty/internal/api/handler"
	apimiddleware "github.com/guessparty/guessparty/internal/api/middleware"
	"github.com/guessparty/guessparty/internal/middleware"
	"github.com/guessparty/guessparty/internal/services/identity"
	"github.com/guessparty/guessparty/internal/services/session"
	"github.com/guessparty/guessparty/internal/transport/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Sessions    *session.Controller
	Identities  *identity.Service
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
	SessionCfg  session.Config
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	identityHandler := handler.NewIdentityHandler(cfg.Identities, cfg.Logger)
	sessionHandler := handler.NewSessionHandler(cfg.Sessions, cfg.HubManager, cfg.Broadcaster, cfg.SessionCfg, cfg.Logger)

	// Create middleware
	identityMiddleware := apimiddleware.Identity(cfg.Identities)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Registration needs no identity; it is how one is issued
	api.HandleFunc("/players", identityHandler.Register).Methods(http.MethodPost)

	// Identified player routes
	players := api.PathPrefix("/players").Subrouter()
	players.Use(identityMiddleware)
	players.HandleFunc("/me", identityHandler.Me).Methods(http.MethodGet)
	players.HandleFunc("/me", identityHandler.Forget).Methods(http.MethodDelete)

	// Session routes (all require an identity)
	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.Use(identityMiddleware)
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{sessionId}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{sessionId}/join", sessionHandler.Join).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}/leave", sessionHandler.Leave).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}/question", sessionHandler.SetQuestion).Methods(http.MethodPut)
	sessions.HandleFunc("/{sessionId}/start", sessionHandler.Start).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}/advance", sessionHandler.Advance).Methods(http.MethodPost)
	sessions.HandleFunc("/{sessionId}/events", sessionHandler.Events).Methods(http.MethodGet)

	// Health check endpoint (no identity)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
