package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL applies to waiting/active/mid-game sessions. Must exceed
	// any plausible game duration.
	SessionTTL time.Duration

	// GraceTTL applies to game-over sessions: final standings stay
	// queryable for this window, then the session expires.
	GraceTTL time.Duration

	// PlayerTTL applies to player identity records.
	PlayerTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		SessionTTL:   24 * time.Hour,
		GraceTTL:     5 * time.Minute,
		PlayerTTL:    24 * time.Hour,
	}
}
