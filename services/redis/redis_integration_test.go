//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"RPGLobby/config"
	redis_models "RPGLobby/models/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisRevoker(t *testing.T) {
	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)
	client, err := config.ConnectRedis(ctx, "redis://"+endpoint)
	require.NoError(t, err)
	rc := NewRedisClient(client)
	t.Cleanup(func() { _ = rc.CloseRedis() })

	revoked, err := rc.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	entry := redis_models.RevokedToken{UserID: 1, RevokedAt: time.Now(), ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, rc.Revoke(ctx, "abc", entry, time.Minute))

	revoked, err = rc.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, "revoked:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, rc.Revoke(ctx, "expired", entry, 0), "already expired tokens are not stored")
	revoked, err = rc.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}
