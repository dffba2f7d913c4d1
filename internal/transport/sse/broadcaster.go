package sse

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/services/session"
)

// Broadcaster fans session state changes out to connected SSE clients as
// JSON event payloads. It implements session.Notifier so timer-originated
// transitions reach clients too.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// Ensure Broadcaster satisfies the core's notifier contract
var _ session.Notifier = (*Broadcaster)(nil)

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// PlayerJoined broadcasts the updated roster after a join
func (b *Broadcaster) PlayerJoined(s *model.Session) {
	b.emit(s.ID, model.EventPlayerJoined, model.PlayerListPayload{Players: s.Players})
}

// PlayerLeft broadcasts the updated roster after a disconnect, plus the
// game-master handover when one happened
func (b *Broadcaster) PlayerLeft(s *model.Session, newGameMaster model.PlayerID) {
	b.emit(s.ID, model.EventPlayerLeft, model.PlayerListPayload{Players: s.Players})
	if newGameMaster != "" {
		b.emit(s.ID, model.EventGameMasterChanged, model.GameMasterChangedPayload{GameMasterID: newGameMaster})
	}
}

// QuestionReady announces that the game master set a question. The answer
// never leaves the server.
func (b *Broadcaster) QuestionReady(s *model.Session) {
	b.emit(s.ID, model.EventQuestionReady, struct{}{})
}

// RoundStarted announces an active round and its deadline
func (b *Broadcaster) RoundStarted(s *model.Session, durationSeconds int) {
	b.emit(s.ID, model.EventRoundStarted, model.RoundStartedPayload{
		Round:           s.CurrentRound,
		Question:        s.Question,
		DurationSeconds: durationSeconds,
	})
}

// RoundEnded announces a round reaching a terminal state, revealing the
// answer. Implements session.Notifier for the timeout path.
func (b *Broadcaster) RoundEnded(_ context.Context, s *model.Session) {
	b.emit(s.ID, model.EventRoundEnded, model.RoundEndedPayload{
		Reason:   s.EndReason,
		WinnerID: s.WinnerID,
		Answer:   s.Answer,
		Players:  s.Players,
	})
}

// NextRound announces rotation into the next round
func (b *Broadcaster) NextRound(s *model.Session) {
	b.emit(s.ID, model.EventNextRound, model.NextRoundPayload{
		Round:        s.CurrentRound,
		GameMasterID: s.GameMasterID,
		Players:      s.Players,
	})
}

// GameOver announces final standings
func (b *Broadcaster) GameOver(s *model.Session, standings, winners []model.Player) {
	b.emit(s.ID, model.EventGameOver, model.GameOverPayload{
		Standings: standings,
		Winners:   winners,
	})
}

func (b *Broadcaster) emit(id model.SessionID, event model.EventType, payload any) {
	hub := b.hubManager.GetHub(id)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("session", string(id)),
			slog.String("event", string(event)),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(string(event), string(data))
}
