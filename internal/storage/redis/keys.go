package redis

import (
	"fmt"

	"github.com/guessparty/guessparty/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "gparty"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionKeyPattern matches all session keys, for administrative sweeps
func sessionKeyPattern() string {
	return fmt.Sprintf("%s:session:*", keyPrefix)
}

// playerKey returns the Redis key for a PlayerIdentity
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}
