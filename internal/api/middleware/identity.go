package middleware

import (
	"context"
	"net/http"

	"github.com/guessparty/guessparty/internal/api/apierr"
	"github.com/guessparty/guessparty/internal/model"
	"github.com/guessparty/guessparty/internal/services/identity"
)

// PlayerIDHeader carries the opaque player id on every identified request
const PlayerIDHeader = "X-Player-ID"

type contextKey string

const playerContextKey contextKey = "player"

// Identity resolves the X-Player-ID header to a registered identity and
// stores it on the request context. Requests without a resolvable id are
// rejected.
func Identity(identities *identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(PlayerIDHeader)
			if id == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			player, err := identities.Resolve(r.Context(), model.PlayerID(id))
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPlayer returns the identity attached to the request context, if any
func GetPlayer(ctx context.Context) (*model.PlayerIdentity, bool) {
	player, ok := ctx.Value(playerContextKey).(*model.PlayerIdentity)
	return player, ok
}

// MustGetPlayer returns the identity attached to the request context,
// panicking if the identity middleware did not run
func MustGetPlayer(ctx context.Context) *model.PlayerIdentity {
	player, ok := GetPlayer(ctx)
	if !ok {
		panic("request context has no player identity")
	}
	return player
}
