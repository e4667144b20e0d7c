package redis

import "time"

// RevokedToken is the value stored under a revoked token's key. The key
// itself expires together with the token.
type RevokedToken struct {
	UserID    uint      `json:"user_id"`
	RevokedAt time.Time `json:"revoked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
