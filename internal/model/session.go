package model

import (
	"sort"
	"strings"
	"time"
)

// SessionID is a short human-shareable code identifying a game session
type SessionID string

// PlayerID uniquely identifies a player across the system
type PlayerID string

// SessionStatus represents the current phase of a session's round
type SessionStatus string

const (
	StatusWaiting SessionStatus = "waiting" // Lobby open, question being set
	StatusActive  SessionStatus = "active"  // Round in progress, timer running
	StatusEnded   SessionStatus = "ended"   // Round finished, awaiting next round or game over
)

// EndReason records why a round ended
type EndReason string

const (
	EndReasonCorrect EndReason = "correct" // A player submitted the correct answer
	EndReasonTimeout EndReason = "timeout" // The round timer expired
)

// Player represents a participant within a session. Tagged because it is
// embedded directly in broadcast event payloads.
type Player struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Score int      `json:"score"`
}

// Session represents one game instance progressing through rounds.
// The answer is always stored pre-normalized so guess comparison is a
// direct equality check.
type Session struct {
	ID           SessionID
	Status       SessionStatus
	GameMasterID PlayerID
	Players      []Player // join order
	Question     string
	Answer       string // normalized
	CurrentRound int
	MaxRounds    int
	StartedAt    time.Time // round start, zero when no round has run
	WinnerID     PlayerID  // empty when no winner recorded
	EndReason    EndReason
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Normalize trims whitespace and lower-cases text for answer comparison
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GetPlayer returns the player with the given ID, or nil if not present
func (s *Session) GetPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// HasPlayer reports whether the player is on the roster
func (s *Session) HasPlayer(id PlayerID) bool {
	return s.GetPlayer(id) != nil
}

// IsGameMaster reports whether the player holds the game-master role
func (s *Session) IsGameMaster(id PlayerID) bool {
	return s.GameMasterID == id
}

// HasQuestion reports whether a question and answer are set for the round
func (s *Session) HasQuestion() bool {
	return s.Question != "" && s.Answer != ""
}

// GameOver reports whether the session is terminal: the round counter has
// advanced past the configured limit.
func (s *Session) GameOver() bool {
	return s.CurrentRound > s.MaxRounds
}

// NextGameMaster returns the player following the current game master in
// join order, wrapping around. If the game master is no longer on the
// roster the first player takes over.
func (s *Session) NextGameMaster() PlayerID {
	if len(s.Players) == 0 {
		return ""
	}
	for i := range s.Players {
		if s.Players[i].ID == s.GameMasterID {
			return s.Players[(i+1)%len(s.Players)].ID
		}
	}
	return s.Players[0].ID
}

// Standings returns the roster ordered by score descending. Equal scores
// keep join order.
func (s *Session) Standings() []Player {
	standings := make([]Player, len(s.Players))
	copy(standings, s.Players)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	return standings
}

// Winners returns the player(s) with the highest score. Ties are reported
// together as joint winners.
func (s *Session) Winners() []Player {
	if len(s.Players) == 0 {
		return nil
	}
	best := s.Players[0].Score
	for _, p := range s.Players[1:] {
		if p.Score > best {
			best = p.Score
		}
	}
	var winners []Player
	for _, p := range s.Players {
		if p.Score == best {
			winners = append(winners, p)
		}
	}
	return winners
}
