package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/services/validate"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeSessionExists       = "SESSION_EXISTS"
	CodeNotJoinable         = "NOT_JOINABLE"
	CodeNotGameMaster       = "NOT_GAME_MASTER"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeNoQuestionSet       = "NO_QUESTION_SET"
	CodeInvalidQuestion     = "INVALID_QUESTION"
	CodeTimeExpired         = "TIME_EXPIRED"
	CodeRoundNotEnded       = "ROUND_NOT_ENDED"
	CodeGameOver            = "GAME_OVER"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Structural validation failures report the offending field
	var ve *validate.Error
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, ve.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrEmptyPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, "Player name is required"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrSessionExists):
		return &httpError{http.StatusConflict, APIError{CodeSessionExists, "Session id already exists"}}
	case errors.Is(err, model.ErrNotJoinable):
		return &httpError{http.StatusConflict, APIError{CodeNotJoinable, "Session is not accepting this action right now"}}
	case errors.Is(err, model.ErrNotGameMaster):
		return &httpError{http.StatusForbidden, APIError{CodeNotGameMaster, "Only the game master can perform this action"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Need at least 3 players to start"}}
	case errors.Is(err, model.ErrNoQuestionSet):
		return &httpError{http.StatusConflict, APIError{CodeNoQuestionSet, "No question has been set for this round"}}
	case errors.Is(err, model.ErrInvalidQuestion):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidQuestion, "Question or answer is invalid"}}
	case errors.Is(err, model.ErrTimeExpired):
		return &httpError{http.StatusConflict, APIError{CodeTimeExpired, "Time is up for this round"}}
	case errors.Is(err, model.ErrRoundNotEnded):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotEnded, "Round has not ended yet"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewValidationError creates an invalid request error
func NewValidationError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Player identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
