// Package testutil provides an in-memory store and fixtures for tests.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"RPGLobby/config"
	models "RPGLobby/models/postgres"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite store closed at test end.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectSQLite("file::memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseGORM(db) })
	require.NoError(t, config.MigrateDatabase(db))
	return db
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateLobby inserts a lobby owned by master.
func CreateLobby(t *testing.T, db *gorm.DB, master *models.User, name string) *models.Lobby {
	t.Helper()
	l := &models.Lobby{Name: name, MasterID: master.ID}
	require.NoError(t, db.Create(l).Error)
	return l
}

// CreateInvite inserts an invite in the given status.
func CreateInvite(t *testing.T, db *gorm.DB, lobby *models.Lobby, player *models.User, status models.InviteStatus) *models.Invite {
	t.Helper()
	inv := &models.Invite{LobbyID: lobby.ID, PlayerID: player.ID, Status: status}
	require.NoError(t, db.Create(inv).Error)
	return inv
}
