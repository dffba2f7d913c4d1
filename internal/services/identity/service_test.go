package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/guessparty/guessparty/internal/dependencies/mocks"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/storage/memory"
	"github.com/guessparty/guessparty/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.NewWithClock(s.clock), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterIssuesUniqueIDs() {
	alice, err := s.service.Register(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := s.service.Register(s.ctx, "Bob")
	s.Require().NoError(err)

	s.NotEmpty(alice.ID)
	s.NotEqual(alice.ID, bob.ID)
	s.Equal("Alice", alice.DisplayName)
	s.Equal(s.clock.Now(), alice.CreatedAt)
}

func (s *ServiceSuite) TestResolveReturnsRegisteredPlayer() {
	alice, err := s.service.Register(s.ctx, "Alice")
	s.Require().NoError(err)

	resolved, err := s.service.Resolve(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(alice.DisplayName, resolved.DisplayName)
}

func (s *ServiceSuite) TestResolveUnknownIDFails() {
	_, err := s.service.Resolve(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestForgetRemovesPlayer() {
	alice, err := s.service.Register(s.ctx, "Alice")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Forget(s.ctx, alice.ID))

	_, err = s.service.Resolve(s.ctx, alice.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
