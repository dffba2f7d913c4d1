package response

import (
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/services/session"
)

// Player represents a session roster entry in API responses
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:    string(p.ID),
		Name:  p.Name,
		Score: p.Score,
	}
}

// PlayersFromModel converts a roster to response players
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Identity is the response for identity registration
type Identity struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

// IdentityFromModel converts a model.PlayerIdentity
func IdentityFromModel(p *model.PlayerIdentity) Identity {
	return Identity{
		PlayerID:    string(p.ID),
		DisplayName: p.DisplayName,
	}
}

// Session represents a session in API responses. The answer is never
// included; only the question is observable.
type Session struct {
	ID           string   `json:"id"`
	Status       string   `json:"status"`
	GameMasterID string   `json:"game_master_id"`
	Players      []Player `json:"players"`
	Question     string   `json:"question,omitempty"`
	CurrentRound int      `json:"current_round"`
	MaxRounds    int      `json:"max_rounds"`
	WinnerID     string   `json:"winner_id,omitempty"`
	EndReason    string   `json:"end_reason,omitempty"`
	GameOver     bool     `json:"game_over"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:           string(s.ID),
		Status:       string(s.Status),
		GameMasterID: string(s.GameMasterID),
		Players:      PlayersFromModel(s.Players),
		Question:     s.Question,
		CurrentRound: s.CurrentRound,
		MaxRounds:    s.MaxRounds,
		WinnerID:     string(s.WinnerID),
		EndReason:    string(s.EndReason),
		GameOver:     s.GameOver(),
	}
}

// GuessResult is the response for a guess submission
type GuessResult struct {
	Outcome string  `json:"outcome"`
	Session Session `json:"session"`
}

// GuessResultFromModel converts a session.GuessResult
func GuessResultFromModel(r *session.GuessResult) GuessResult {
	res := GuessResult{Outcome: string(r.Outcome)}
	if r.Session != nil {
		res.Session = SessionFromModel(r.Session)
	}
	return res
}

// RoundAdvance is the response for advancing past an ended round
type RoundAdvance struct {
	GameOver  bool     `json:"game_over"`
	Session   Session  `json:"session"`
	Standings []Player `json:"standings,omitempty"`
	Winners   []Player `json:"winners,omitempty"`
}

// RoundAdvanceFromModel converts a session.RoundAdvance
func RoundAdvanceFromModel(a *session.RoundAdvance) RoundAdvance {
	return RoundAdvance{
		GameOver:  a.GameOver,
		Session:   SessionFromModel(a.Session),
		Standings: PlayersFromModel(a.Standings),
		Winners:   PlayersFromModel(a.Winners),
	}
}
