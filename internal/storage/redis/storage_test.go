package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/guessparty/guessparty/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	cfg.GraceTTL = 5 * time.Minute
	cfg.PlayerTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) waitingSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:           id,
		Status:       model.StatusWaiting,
		GameMasterID: "alice",
		Players: []model.Player{
			{ID: "alice", Name: "Alice", Score: 0},
		},
		CurrentRound: 1,
		MaxRounds:    5,
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.waitingSession("ABC234")
	session.Question = "Capital of France?"
	session.Answer = "paris"

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Question, retrieved.Question)
	s.Equal(session.Answer, retrieved.Answer)
	s.Len(retrieved.Players, 1)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NOPE99")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("ABC234"))

	err := s.storage.DeleteSession(s.ctx, "ABC234")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("ABC234"))

	exists, err := s.storage.SessionExists(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.storage.SessionExists(s.ctx, "NOPE99")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestListSessionIDs() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("AAAAAA"))
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("BBBBBB"))

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.SessionID{"AAAAAA", "BBBBBB"}, ids)
}

func (s *StorageSuite) TestLiveSessionGetsSessionTTL() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("ABC234"))

	ttl := s.mini.TTL(sessionKey("ABC234"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestTerminalSessionGetsGraceTTL() {
	session := s.waitingSession("ABC234")
	session.Status = model.StatusEnded
	session.CurrentRound = 6 // past MaxRounds

	_ = s.storage.SaveSession(s.ctx, session)

	ttl := s.mini.TTL(sessionKey("ABC234"))
	s.Equal(5*time.Minute, ttl)
}

func (s *StorageSuite) TestSessionExpires() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("ABC234"))

	s.mini.FastForward(time.Hour + time.Minute)

	_, err := s.storage.GetSession(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Player identity tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.PlayerIdentity{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerIdentity{ID: "player-1", DisplayName: "Alice"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerGetsTTL() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerIdentity{ID: "player-1", DisplayName: "Alice"})

	ttl := s.mini.TTL(playerKey("player-1"))
	s.Equal(time.Hour, ttl)
}
