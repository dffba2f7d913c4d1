package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/guessparty/guessparty/internal/api/apierr"
	"github.com/guessparty/guessparty/internal/api/middleware"
	"github.com/guessparty/guessparty/internal/api/request"
	"github.com/guessparty/guessparty/internal/api/response"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/services/session"
	"github.com/guessparty/guessparty/internal/services/validate"
	"github.com/guessparty/guessparty/internal/transport/sse"
)

// SessionHandler serves the session lifecycle endpoints
type SessionHandler struct {
	sessions    *session.Controller
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
	cfg         session.Config
	logger      *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	sessions *session.Controller,
	hubManager *sse.HubManager,
	broadcaster *sse.Broadcaster,
	cfg session.Config,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		hubManager:  hubManager,
		broadcaster: broadcaster,
		cfg:         cfg,
		logger:      logger,
	}
}

func sessionIDFromPath(r *http.Request) (model.SessionID, error) {
	code, err := validate.SessionCode(mux.Vars(r)["sessionId"])
	if err != nil {
		return "", err
	}
	return model.SessionID(code), nil
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}
	name, err := validate.PlayerName(req.PlayerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	s, err := h.sessions.CreateSession(r.Context(), player.ID, name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// Get handles GET /sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	s, err := h.sessions.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Join handles POST /sessions/{sessionId}/join
func (h *SessionHandler) Join(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.JoinSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}
	name, err := validate.PlayerName(req.PlayerName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	s, err := h.sessions.JoinSession(r.Context(), id, player.ID, name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcaster.PlayerJoined(s)
	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Leave handles POST /sessions/{sessionId}/leave
func (h *SessionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	removal, err := h.sessions.RemovePlayer(r.Context(), id, player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if removal.Deleted {
		h.hubManager.RemoveHub(id)
		response.NoContent(w)
		return
	}
	if removal.Removed {
		h.broadcaster.PlayerLeft(removal.Session, removal.NewGameMaster)
	}
	response.NoContent(w)
}

// SetQuestion handles PUT /sessions/{sessionId}/question
func (h *SessionHandler) SetQuestion(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SetQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}
	question, err := validate.Question(req.Question)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	answer, err := validate.Answer(req.Answer)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	s, err := h.sessions.SetQuestion(r.Context(), id, player.ID, question, answer)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcaster.QuestionReady(s)
	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Start handles POST /sessions/{sessionId}/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	s, err := h.sessions.StartRound(r.Context(), id, player.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.broadcaster.RoundStarted(s, int(h.cfg.RoundDuration.Seconds()))
	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Guess handles POST /sessions/{sessionId}/guess
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.SubmitGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}
	guess, err := validate.Guess(req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	result, err := h.sessions.SubmitGuess(r.Context(), id, player.ID, guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if result.Outcome == session.GuessWinner {
		h.broadcaster.RoundEnded(r.Context(), result.Session)
	}
	response.JSON(w, http.StatusOK, response.GuessResultFromModel(result))
}

// Advance handles POST /sessions/{sessionId}/advance
func (h *SessionHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	advance, err := h.sessions.AdvanceRound(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if advance.GameOver {
		h.broadcaster.GameOver(advance.Session, advance.Standings, advance.Winners)
	} else {
		h.broadcaster.NextRound(advance.Session)
	}
	response.JSON(w, http.StatusOK, response.RoundAdvanceFromModel(advance))
}

// Delete handles DELETE /sessions/{sessionId}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	if err := h.sessions.DeleteSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.hubManager.RemoveHub(id)
	response.NoContent(w)
}

// Events handles GET /sessions/{sessionId}/events (SSE stream)
func (h *SessionHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	id, err := sessionIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	// The stream requires an existing session; clients subscribe after
	// creating or joining.
	if _, err := h.sessions.GetSession(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, player.ID)
}
