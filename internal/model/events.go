package model

// EventType identifies the type of session event broadcast to clients
type EventType string

const (
	EventPlayerJoined      EventType = "player_joined"
	EventPlayerLeft        EventType = "player_left"
	EventGameMasterChanged EventType = "game_master_changed"
	EventQuestionReady     EventType = "question_ready"
	EventRoundStarted      EventType = "round_started"
	EventRoundEnded        EventType = "round_ended"
	EventNextRound         EventType = "next_round"
	EventGameOver          EventType = "game_over"
)

// PlayerListPayload carries the roster after a join or leave
type PlayerListPayload struct {
	Players []Player `json:"players"`
}

// GameMasterChangedPayload announces a game-master handover
type GameMasterChangedPayload struct {
	GameMasterID PlayerID `json:"game_master_id"`
}

// RoundStartedPayload announces the start of a timed round
type RoundStartedPayload struct {
	Round           int    `json:"round"`
	Question        string `json:"question"`
	DurationSeconds int    `json:"duration_seconds"`
}

// RoundEndedPayload announces a round reaching a terminal state
type RoundEndedPayload struct {
	Reason   EndReason `json:"reason"`
	WinnerID PlayerID  `json:"winner_id,omitempty"`
	Answer   string    `json:"answer"`
	Players  []Player  `json:"players"`
}

// NextRoundPayload announces rotation into the next round
type NextRoundPayload struct {
	Round        int      `json:"round"`
	GameMasterID PlayerID `json:"game_master_id"`
	Players      []Player `json:"players"`
}

// GameOverPayload announces final standings
type GameOverPayload struct {
	Standings []Player `json:"standings"`
	Winners   []Player `json:"winners"`
}
