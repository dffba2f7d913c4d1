package memory

import (
	"context"
	"sync"
	"time"

	"github.com/guessparty/guessparty/internal/dependencies/clock"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/storage"
)

// Expiry policy for in-memory entries. Matches the Redis backend's
// defaults: live sessions outlast any plausible game, terminal sessions
// only survive the post-game grace window.
const (
	SessionTTL = 24 * time.Hour
	GraceTTL   = 5 * time.Minute
	PlayerTTL  = 24 * time.Hour
)

// Storage is an in-memory implementation of the storage interface.
// Expiry is enforced lazily on read against the injected clock.
type Storage struct {
	mu sync.RWMutex

	clock    clock.Clock
	sessions map[model.SessionID]*sessionEntry
	players  map[model.PlayerID]*playerEntry
}

type sessionEntry struct {
	session   *model.Session
	expiresAt time.Time
}

type playerEntry struct {
	player    *model.PlayerIdentity
	expiresAt time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return NewWithClock(clock.New())
}

// NewWithClock creates an in-memory storage with the given clock (for testing)
func NewWithClock(clk clock.Clock) *Storage {
	return &Storage{
		clock:    clk,
		sessions: make(map[model.SessionID]*sessionEntry),
		players:  make(map[model.PlayerID]*playerEntry),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ttl := SessionTTL
	if session.GameOver() {
		ttl = GraceTTL
	}
	s.sessions[session.ID] = &sessionEntry{
		session:   session,
		expiresAt: s.clock.Now().Add(ttl),
	}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	if !ok || s.expired(entry.expiresAt) {
		return nil, model.ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	return ok && !s.expired(entry.expiresAt), nil
}

func (s *Storage) ListSessionIDs(ctx context.Context) ([]model.SessionID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.SessionID, 0, len(s.sessions))
	for id, entry := range s.sessions {
		if !s.expired(entry.expiresAt) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Player identity operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.PlayerIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = &playerEntry{
		player:    player,
		expiresAt: s.clock.Now().Add(PlayerTTL),
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.players[id]
	if !ok || s.expired(entry.expiresAt) {
		return nil, model.ErrPlayerNotFound
	}
	return entry.player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *Storage) expired(deadline time.Time) bool {
	return s.clock.Now().After(deadline)
}
