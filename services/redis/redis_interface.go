package redis

import (
	"context"
	"time"

	redis_models "RPGLobby/models/redis"
)

// Revoker stores tokens that must no longer be accepted. Entries only need
// to live as long as the token they block.
type Revoker interface {
	Revoke(ctx context.Context, tokenKey string, entry redis_models.RevokedToken, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenKey string) (bool, error)
}
