package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/guessparty/guessparty/internal/dependencies/clock"
	"github.com/guessparty/guessparty/internal/dependencies/random"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/storage"
)

const (
	// SessionCodeLength is the length of generated session codes
	SessionCodeLength = 6
	// SessionCodeAlphabet is the characters used in session codes (avoid confusing chars)
	SessionCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// MinPlayers is the minimum roster size to start a round
	MinPlayers = 3
	// ScoreBonus is awarded to the first correct guesser of a round
	ScoreBonus = 10

	// timeoutHandlingBudget bounds store I/O when a round timer fires
	timeoutHandlingBudget = 10 * time.Second
)

// Config holds configurable settings for game sessions
type Config struct {
	// RoundDuration is the wall-clock limit of an active round
	RoundDuration time.Duration
	// MaxRounds is the number of rounds before game over
	MaxRounds int
}

// DefaultConfig returns the default session configuration
func DefaultConfig() Config {
	return Config{
		RoundDuration: 60 * time.Second,
		MaxRounds:     5,
	}
}

// Notifier receives session transitions that originate inside the core
// rather than from a client request, i.e. round timeouts. The transport
// layer implements it to fan the new state out to connected clients.
type Notifier interface {
	RoundEnded(ctx context.Context, session *model.Session)
}

// GuessOutcome classifies the result of a guess submission
type GuessOutcome string

const (
	// GuessWinner means the guess matched and ended the round
	GuessWinner GuessOutcome = "winner"
	// GuessIncorrect means the guess did not match; no state change
	GuessIncorrect GuessOutcome = "incorrect"
	// GuessIgnored means the round was no longer active or the guesser
	// was not on the roster; no state change, not an error
	GuessIgnored GuessOutcome = "ignored"
)

// GuessResult describes the effect of a guess
type GuessResult struct {
	Outcome GuessOutcome
	Session *model.Session
}

// RoundAdvance describes the effect of advancing past an ended round
type RoundAdvance struct {
	GameOver  bool
	Session   *model.Session
	Standings []model.Player // populated on game over
	Winners   []model.Player // populated on game over; joint winners on tie
}

// Removal describes the effect of removing a player from a session
type Removal struct {
	Removed       bool
	Deleted       bool           // roster emptied, session removed
	NewGameMaster model.PlayerID // set when the role was reassigned
	Session       *model.Session // nil when Deleted
}

// Controller manages the session state machine. Every mutating operation
// is a guarded load-mutate-save cycle against the storage backend, so the
// net effect of concurrent operations on one session id is equivalent to
// some serial order.
type Controller struct {
	storage  storage.Storage
	guard    *Guard
	timers   *TimerCoordinator
	clock    clock.Clock
	random   random.Random
	notifier Notifier
	logger   *slog.Logger
	cfg      Config
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	notifier Notifier,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		guard:    NewGuard(),
		timers:   NewTimerCoordinator(),
		clock:    clock,
		random:   random,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Close disarms all outstanding round timers
func (c *Controller) Close() {
	c.timers.Stop()
}

// CreateSession creates a new session with the creator as sole player and
// game master. The code is generated until it does not collide.
func (c *Controller) CreateSession(ctx context.Context, creatorID model.PlayerID, creatorName string) (*model.Session, error) {
	name := strings.TrimSpace(creatorName)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}

	for {
		id := model.SessionID(c.random.String(SessionCodeLength, SessionCodeAlphabet))
		session, err := c.createWithID(ctx, id, creatorID, name)
		if errors.Is(err, model.ErrSessionExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		c.logger.Info("session created",
			slog.String("session_id", string(id)),
			slog.String("game_master", string(creatorID)),
		)
		return session, nil
	}
}

func (c *Controller) createWithID(ctx context.Context, id model.SessionID, creatorID model.PlayerID, name string) (*model.Session, error) {
	var session *model.Session
	err := c.guard.Do(id, func() error {
		exists, err := c.storage.SessionExists(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrSessionExists
		}

		now := c.clock.Now()
		session = &model.Session{
			ID:           id,
			Status:       model.StatusWaiting,
			GameMasterID: creatorID,
			Players: []model.Player{
				{ID: creatorID, Name: name, Score: 0},
			},
			CurrentRound: 1,
			MaxRounds:    c.cfg.MaxRounds,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return c.storage.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// JoinSession adds a player to a waiting session. Joining twice with the
// same player id is a no-op, not an error.
func (c *Controller) JoinSession(ctx context.Context, id model.SessionID, playerID model.PlayerID, name string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}

	var session *model.Session
	err := c.guard.Do(id, func() error {
		var err error
		session, err = c.storage.GetSession(ctx, id)
		if err != nil {
			return err
		}
		if session.Status != model.StatusWaiting {
			return model.ErrNotJoinable
		}
		if session.HasPlayer(playerID) {
			// Duplicate join, e.g. a client retry
			return nil
		}

		session.Players = append(session.Players, model.Player{ID: playerID, Name: name, Score: 0})
		session.UpdatedAt = c.clock.Now()
		return c.storage.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SetQuestion records the round's question and normalized answer. Only the
// game master may set it, and only while the session is waiting.
func (c *Controller) SetQuestion(ctx context.Context, id model.SessionID, requesterID model.PlayerID, question, answer string) (*model.Session, error) {
	question = strings.TrimSpace(question)
	answer = model.Normalize(answer)
	if question == "" || len(question) > 200 || answer == "" || len(answer) > 50 {
		return nil, model.ErrInvalidQuestion
	}

	var session *model.Session
	err := c.guard.Do(id, func() error {
		var err error
		session, err = c.storage.GetSession(ctx, id)
		if err != nil {
			return err
		}
		if session.Status != model.StatusWaiting {
			return model.ErrNotJoinable
		}
		if !session.IsGameMaster(requesterID) {
			return model.ErrNotGameMaster
		}

		session.Question = question
		session.Answer = answer
		session.UpdatedAt = c.clock.Now()
		return c.storage.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// StartRound transitions a waiting session to active and arms the round
// timer. Requires the game master, at least MinPlayers players, and a
// question to have been set.
func (c *Controller) StartRound(ctx context.Context, id model.SessionID, requesterID model.PlayerID) (*model.Session, error) {
	var session *model.Session
	err := c.guard.Do(id, func() error {
		var err error
		session, err = c.storage.GetSession(ctx, id)
		if err != nil {
			return err
		}
		if session.GameOver() {
			return model.ErrGameOver
		}
		if session.Status != model.StatusWaiting {
			return model.ErrNotJoinable
		}
		if len(session.Players) < MinPlayers {
			return model.ErrInsufficientPlayers
		}
		if !session.IsGameMaster(requesterID) {
			return model.ErrNotGameMaster
		}
		if !session.HasQuestion() {
			return model.ErrNoQuestionSet
		}

		now := c.clock.Now()
		session.Status = model.StatusActive
		session.StartedAt = now
		session.WinnerID = ""
		session.EndReason = ""
		session.UpdatedAt = now
		return c.storage.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	// Arm only after the active state is persisted, so a failed save
	// never leaves an orphaned timer.
	c.armRoundTimer(id)

	c.logger.Info("round started",
		slog.String("session_id", string(id)),
		slog.Int("round", session.CurrentRound),
		slog.Int("player_count", len(session.Players)),
	)
	return session, nil
}

func (c *Controller) armRoundTimer(id model.SessionID) {
	c.timers.Arm(id, c.cfg.RoundDuration, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeoutHandlingBudget)
		defer cancel()

		session, err := c.HandleTimeout(ctx, id)
		if err != nil {
			c.logger.Error("round timeout handling failed",
				slog.String("session_id", string(id)),
				slog.String("error", err.Error()),
			)
			return
		}
		if session != nil && c.notifier != nil {
			c.notifier.RoundEnded(ctx, session)
		}
	})
}

// SubmitGuess applies a player's guess to an active round. Guesses against
// a round that already ended, or from players not on the roster, are
// silently ignored so a late guess can never resurrect a round. A guess
// arriving after the deadline but before the timer fires gets ErrTimeExpired
// without mutating state; the timeout path owns ending the round.
func (c *Controller) SubmitGuess(ctx context.Context, id model.SessionID, playerID model.PlayerID, guess string) (*GuessResult, error) {
	var result *GuessResult
	err := c.guard.Do(id, func() error {
		session, err := c.storage.GetSession(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				result = &GuessResult{Outcome: GuessIgnored}
				return nil
			}
			return err
		}

		if session.Status != model.StatusActive || !session.HasPlayer(playerID) {
			result = &GuessResult{Outcome: GuessIgnored, Session: session}
			return nil
		}

		if c.clock.Now().Sub(session.StartedAt) > c.cfg.RoundDuration {
			return model.ErrTimeExpired
		}

		if model.Normalize(guess) != session.Answer {
			result = &GuessResult{Outcome: GuessIncorrect, Session: session}
			return nil
		}

		// First matching guess wins: the score award and the transition
		// to ended are persisted in the same save.
		session.GetPlayer(playerID).Score += ScoreBonus
		session.Status = model.StatusEnded
		session.EndReason = model.EndReasonCorrect
		session.WinnerID = playerID
		session.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveSession(ctx, session); err != nil {
			return err
		}

		c.timers.Disarm(id)
		result = &GuessResult{Outcome: GuessWinner, Session: session}

		c.logger.Info("round won",
			slog.String("session_id", string(id)),
			slog.String("winner", string(playerID)),
			slog.Int("round", session.CurrentRound),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HandleTimeout ends an active round whose timer elapsed. If the round
// already reached a terminal state through another path the call is a
// no-op and returns a nil session: the earlier transition wins, so each
// round has at most one terminal cause.
func (c *Controller) HandleTimeout(ctx context.Context, id model.SessionID) (*model.Session, error) {
	var session *model.Session
	err := c.guard.Do(id, func() error {
		s, err := c.storage.GetSession(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrSessionNotFound) {
				return nil
			}
			return err
		}
		if s.Status != model.StatusActive {
			return nil
		}

		s.Status = model.StatusEnded
		s.EndReason = model.EndReasonTimeout
		s.WinnerID = ""
		s.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveSession(ctx, s); err != nil {
			return err
		}

		session = s
		c.logger.Info("round timed out",
			slog.String("session_id", string(id)),
			slog.Int("round", s.CurrentRound),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// AdvanceRound moves an ended session into the next round, rotating the
// game-master role to the next player in join order, or reports game over
// with final standings once the round limit is exceeded.
func (c *Controller) AdvanceRound(ctx context.Context, id model.SessionID) (*RoundAdvance, error) {
	var advance *RoundAdvance
	err := c.guard.Do(id, func() error {
		session, err := c.storage.GetSession(ctx, id)
		if err != nil {
			return err
		}
		if session.GameOver() {
			return model.ErrGameOver
		}
		if session.Status != model.StatusEnded {
			return model.ErrRoundNotEnded
		}

		session.CurrentRound++
		session.UpdatedAt = c.clock.Now()

		if session.CurrentRound > session.MaxRounds {
			// Terminal: status stays ended, the store's grace TTL takes
			// over so clients can observe final standings.
			if err := c.storage.SaveSession(ctx, session); err != nil {
				return err
			}
			advance = &RoundAdvance{
				GameOver:  true,
				Session:   session,
				Standings: session.Standings(),
				Winners:   session.Winners(),
			}
			c.logger.Info("game over",
				slog.String("session_id", string(id)),
				slog.Int("rounds", session.MaxRounds),
			)
			return nil
		}

		session.GameMasterID = session.NextGameMaster()
		session.Status = model.StatusWaiting
		session.Question = ""
		session.Answer = ""
		session.WinnerID = ""
		session.EndReason = ""
		if err := c.storage.SaveSession(ctx, session); err != nil {
			return err
		}
		advance = &RoundAdvance{GameOver: false, Session: session}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return advance, nil
}

// RemovePlayer takes a player off the roster, typically on disconnect.
// An empty roster deletes the session. Losing the game master while
// waiting promotes the first remaining player; a mid-round disconnect
// leaves the round running.
func (c *Controller) RemovePlayer(ctx context.Context, id model.SessionID, playerID model.PlayerID) (*Removal, error) {
	var removal *Removal
	err := c.guard.Do(id, func() error {
		session, err := c.storage.GetSession(ctx, id)
		if err != nil {
			return err
		}
		if !session.HasPlayer(playerID) {
			removal = &Removal{Session: session}
			return nil
		}

		wasGameMaster := session.IsGameMaster(playerID)
		for i, p := range session.Players {
			if p.ID == playerID {
				session.Players = append(session.Players[:i], session.Players[i+1:]...)
				break
			}
		}

		if len(session.Players) == 0 {
			c.timers.Disarm(id)
			if err := c.storage.DeleteSession(ctx, id); err != nil {
				return err
			}
			removal = &Removal{Removed: true, Deleted: true}
			c.logger.Info("session deleted, roster empty",
				slog.String("session_id", string(id)))
			return nil
		}

		removal = &Removal{Removed: true, Session: session}
		if wasGameMaster && session.Status == model.StatusWaiting {
			session.GameMasterID = session.Players[0].ID
			removal.NewGameMaster = session.GameMasterID
		}

		session.UpdatedAt = c.clock.Now()
		return c.storage.SaveSession(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return removal, nil
}

// DeleteSession disarms any round timer and removes the session
func (c *Controller) DeleteSession(ctx context.Context, id model.SessionID) error {
	return c.guard.Do(id, func() error {
		c.timers.Disarm(id)
		return c.storage.DeleteSession(ctx, id)
	})
}

// CleanupEmptySessions is an administrative sweep deleting sessions whose
// roster is empty
func (c *Controller) CleanupEmptySessions(ctx context.Context) (int, error) {
	ids, err := c.storage.ListSessionIDs(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, id := range ids {
		err := c.guard.Do(id, func() error {
			session, err := c.storage.GetSession(ctx, id)
			if err != nil {
				if errors.Is(err, model.ErrSessionNotFound) {
					return nil
				}
				return err
			}
			if len(session.Players) > 0 {
				return nil
			}
			c.timers.Disarm(id)
			if err := c.storage.DeleteSession(ctx, id); err != nil {
				return err
			}
			deleted++
			return nil
		})
		if err != nil {
			return deleted, err
		}
	}

	if deleted > 0 {
		c.logger.Info("empty sessions cleaned up", slog.Int("deleted", deleted))
	}
	return deleted, nil
}
