package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/guessparty/guessparty/internal/dependencies/mocks"
	"github.com/guessparty/guessparty/internal/model"
)

type StorageSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.storage = NewWithClock(s.clock)
	s.ctx = context.Background()
}

func (s *StorageSuite) waitingSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID:           id,
		Status:       model.StatusWaiting,
		GameMasterID: "alice",
		Players: []model.Player{
			{ID: "alice", Name: "Alice"},
		},
		CurrentRound: 1,
		MaxRounds:    5,
		CreatedAt:    s.clock.Now(),
		UpdatedAt:    s.clock.Now(),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.waitingSession("ABC234")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.GameMasterID, retrieved.GameMasterID)
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

func (s *StorageSuite) TestLiveSessionExpiresAfterTTL() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("ABC234"))

	s.clock.Advance(SessionTTL - time.Minute)
	_, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)
	_, err = s.storage.GetSession(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestTerminalSessionOnlySurvivesGraceWindow() {
	session := s.waitingSession("ABC234")
	session.Status = model.StatusEnded
	session.CurrentRound = 6 // past MaxRounds
	_ = s.storage.SaveSession(s.ctx, session)

	s.clock.Advance(GraceTTL - time.Second)
	_, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Second)
	_, err = s.storage.GetSession(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestExpiredSessionsOmittedFromList() {
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("AAAAAA"))
	s.clock.Advance(SessionTTL + time.Minute)
	_ = s.storage.SaveSession(s.ctx, s.waitingSession("BBBBBB"))

	ids, err := s.storage.ListSessionIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.SessionID{"BBBBBB"}, ids)
}

// Player identity tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.PlayerIdentity{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   s.clock.Now(),
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

func (s *StorageSuite) TestPlayerExpiresAfterTTL() {
	_ = s.storage.SavePlayer(s.ctx, &model.PlayerIdentity{ID: "player-1", DisplayName: "Alice"})

	s.clock.Advance(PlayerTTL + time.Minute)
	_, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
