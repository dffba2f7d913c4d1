// Package validate performs structural checks on raw client input before
// it reaches the session state machine. It checks shape only (presence,
// trimmed length); authorization and state preconditions remain the state
// machine's responsibility.
package validate

import (
	"fmt"
	"strings"
)

// Field length limits, after trimming
const (
	MaxNameLength     = 20
	MaxQuestionLength = 200
	MaxAnswerLength   = 50
	MaxGuessLength    = 50
	SessionCodeLength = 6
)

// Error is a structural validation failure for a single field
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PlayerName checks a display name (1–20 chars after trimming) and
// returns the trimmed value.
func PlayerName(name string) (string, error) {
	return boundedString("player_name", name, MaxNameLength)
}

// SessionCode checks a session code's shape
func SessionCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if len(code) != SessionCodeLength {
		return "", &Error{Field: "session_id", Message: fmt.Sprintf("must be %d characters", SessionCodeLength)}
	}
	return code, nil
}

// Question checks question text (1–200 chars after trimming)
func Question(question string) (string, error) {
	return boundedString("question", question, MaxQuestionLength)
}

// Answer checks answer text (1–50 chars after trimming)
func Answer(answer string) (string, error) {
	return boundedString("answer", answer, MaxAnswerLength)
}

// Guess checks guess text (1–50 chars after trimming)
func Guess(guess string) (string, error) {
	return boundedString("guess", guess, MaxGuessLength)
}

func boundedString(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &Error{Field: field, Message: "is required"}
	}
	if len(value) > max {
		return "", &Error{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return value, nil
}
