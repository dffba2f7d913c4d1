package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/guessparty/guessparty/internal/api/apierr"
	"github.com/guessparty/guessparty/internal/api/middleware"
	"github.com/guessparty/guessparty/internal/api/request"
	"github.com/guessparty/guessparty/internal/api/response"
	"github.com/guessparty/guessparty/internal/services/identity"
	"github.com/guessparty/guessparty/internal/services/validate"
)

// IdentityHandler serves the player registration endpoints
type IdentityHandler struct {
	identities *identity.Service
	logger     *slog.Logger
}

// NewIdentityHandler creates a new IdentityHandler
func NewIdentityHandler(identities *identity.Service, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		identities: identities,
		logger:     logger,
	}
}

// Register handles POST /players
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}

	name, err := validate.PlayerName(req.DisplayName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	player, err := h.identities.Register(r.Context(), name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.IdentityFromModel(player))
}

// Me handles GET /players/me
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	response.JSON(w, http.StatusOK, response.IdentityFromModel(player))
}

// Forget handles DELETE /players/me
func (h *IdentityHandler) Forget(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	if err := h.identities.Forget(r.Context(), player.ID); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.NoContent(w)
}
