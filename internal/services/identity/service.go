// Package identity issues the opaque connection-scoped player ids the
// rest of the system keys on. There is no authentication: an id is an
// uninterpreted token a client presents with every request.
package identity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/guessparty/guessparty/internal/dependencies/clock"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/storage"
)

// Service manages player identity records
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new identity Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Register issues a fresh player id for the given display name
func (s *Service) Register(ctx context.Context, displayName string) (*model.PlayerIdentity, error) {
	player := &model.PlayerIdentity{
		ID:          model.PlayerID(uuid.NewString()),
		DisplayName: displayName,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("player_id", string(player.ID)))
	return player, nil
}

// Resolve looks up the identity behind an opaque player id
func (s *Service) Resolve(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Forget discards a player identity record
func (s *Service) Forget(ctx context.Context, id model.PlayerID) error {
	return s.storage.DeletePlayer(ctx, id)
}
