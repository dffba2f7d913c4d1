package storage

import (
	"context"

	"github.com/guessparty/guessparty/internal/model"
)

// Storage defines the interface for session and player persistence.
//
// Implementations must provide read-after-write consistency for a single
// session id; serialization of concurrent mutations is the caller's job
// (see the session guard). Entries expire: a live session outlasts any
// plausible game, a game-over session only survives the grace window
// during which final standings remain queryable.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
	ListSessionIDs(ctx context.Context) ([]model.SessionID, error)

	// Player identity operations
	SavePlayer(ctx context.Context, player *model.PlayerIdentity) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}
