package model

import "time"

// PlayerIdentity is the connection-scoped identity record for a player.
// The ID is an opaque token supplied to every request; the core treats it
// as uninterpreted. Stored separately from in-session roster entries so a
// player can move between sessions.
type PlayerIdentity struct {
	ID          PlayerID
	DisplayName string
	CreatedAt   time.Time
}
