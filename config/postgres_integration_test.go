//go:build integration

package config_test

import (
	"context"
	"testing"
	"time"

	"RPGLobby/apperr"
	"RPGLobby/config"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/invite"
	"RPGLobby/services/lobby"
	"RPGLobby/testutil"
	"RPGLobby/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) config.Config {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("rpglobby"),
		postgres.WithUsername("rpglobby"),
		postgres.WithPassword("rpglobby"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return config.Config{
		JWTSecret: "test-secret",
		DBDriver:  "postgres",
		Postgres: config.PostgresConfig{
			User:     "rpglobby",
			Password: "rpglobby",
			Host:     host,
			Port:     port.Port(),
			Database: "rpglobby",
			SSLMode:  "disable",
		},
	}
}

func TestPostgresPendingInviteIndex(t *testing.T) {
	cfg := startPostgres(t)
	db, err := config.ConnectGORM(cfg, testutil.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseGORM(db) })
	require.NoError(t, config.MigrateDatabase(db))
	require.NoError(t, config.PingGORM(db))

	m := testutil.CreateUser(t, db, "Mestre", "mestre@example.com", models.RoleMaster)
	p := testutil.CreateUser(t, db, "Jogador", "jogador@example.com", models.RolePlayer)
	l := testutil.CreateLobby(t, db, m, "Mesa")

	testutil.CreateInvite(t, db, l, p, models.InvitePending)
	err = db.Create(&models.Invite{LobbyID: l.ID, PlayerID: p.ID, Status: models.InvitePending}).Error
	assert.True(t, utils.IsUniqueViolation(err), "got %v", err)

	// Answered invites are outside the partial index.
	testutil.CreateInvite(t, db, l, p, models.InviteRejected)
	testutil.CreateInvite(t, db, l, p, models.InviteAccepted)

	svc := invite.NewService(db, lobby.NewService(db, testutil.Discard()), testutil.Discard())
	_, err = svc.Create(context.Background(), auth.Identity{UserID: m.ID, Role: models.RoleMaster}, l.ID, p.Email)
	assert.True(t, apperr.Is(err, apperr.CodeConflict), "got %v", err)
}
