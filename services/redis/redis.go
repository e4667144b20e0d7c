package redis

import (
	redis_models "RPGLobby/models/redis"
	redis_utils "RPGLobby/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient keeps revoked tokens in Redis
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(client *redis.Client) *RedisClient {
	return &RedisClient{client: client}
}

// Revoke stores the entry under "revoked:{tokenKey}"
// TTL: remaining validity of the token
func (rc *RedisClient) Revoke(ctx context.Context, tokenKey string, entry redis_models.RevokedToken, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error marshaling revoked token: %w", err)
	}
	key := redis_utils.FormatRevokedTokenKey(tokenKey)
	if err := rc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error saving revoked token: %w", err)
	}
	return nil
}

// IsRevoked checks whether "revoked:{tokenKey}" exists
func (rc *RedisClient) IsRevoked(ctx context.Context, tokenKey string) (bool, error) {
	key := redis_utils.FormatRevokedTokenKey(tokenKey)
	n, err := rc.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("error checking revoked token: %w", err)
	}
	return n > 0, nil
}

// CloseRedis gracefully closes the Redis connection
func (rc *RedisClient) CloseRedis() error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
