package invite_test

import (
	"context"
	"testing"

	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/invite"
	"RPGLobby/services/lobby"
	"RPGLobby/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	svc    *invite.Service
	master *models.User
	player *models.User
	lobby  *models.Lobby
}

func setup(t *testing.T) fixture {
	db := testutil.NewDB(t)
	m := testutil.CreateUser(t, db, "Mestre", "mestre@example.com", models.RoleMaster)
	p := testutil.CreateUser(t, db, "Jogador", "jogador@example.com", models.RolePlayer)
	return fixture{
		db:     db,
		svc:    invite.NewService(db, lobby.NewService(db, testutil.Discard()), testutil.Discard()),
		master: m,
		player: p,
		lobby:  testutil.CreateLobby(t, db, m, "Mesa de sábado"),
	}
}

func identity(u *models.User) auth.Identity {
	return auth.Identity{UserID: u.ID, Role: u.Role}
}

func TestCreateInvite(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	inv, err := f.svc.Create(ctx, identity(f.master), f.lobby.ID, " Jogador@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, models.InvitePending, inv.Status)
	assert.Equal(t, f.player.ID, inv.PlayerID)
	assert.Equal(t, f.lobby.ID, inv.LobbyID)
}

func TestCreateInviteGuards(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	otherMaster := testutil.CreateUser(t, f.db, "Outro", "outro@example.com", models.RoleMaster)
	foreignLobby := testutil.CreateLobby(t, f.db, otherMaster, "Alheia")

	tests := []struct {
		name  string
		who   auth.Identity
		lobby uint
		email string
		code  string
	}{
		{"player cannot invite", identity(f.player), f.lobby.ID, f.player.Email, apperr.CodeForbidden},
		{"missing lobby id", identity(f.master), 0, f.player.Email, apperr.CodeValidation},
		{"missing email", identity(f.master), f.lobby.ID, "", apperr.CodeValidation},
		{"lobby not owned", identity(f.master), foreignLobby.ID, f.player.Email, apperr.CodeForbidden},
		{"lobby does not exist", identity(f.master), 4242, f.player.Email, apperr.CodeForbidden},
		{"unknown player", identity(f.master), f.lobby.ID, "ghost@example.com", apperr.CodeNotFound},
		{"cannot invite a master", identity(f.master), f.lobby.ID, otherMaster.Email, apperr.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.who, tt.lobby, tt.email)
			assert.True(t, apperr.Is(err, tt.code), "want %s, got %v", tt.code, err)
		})
	}
}

func TestPendingInviteIsUnique(t *testing.T) {
	ctx := context.Background()

	for _, answer := range []models.InviteStatus{models.InviteAccepted, models.InviteRejected} {
		t.Run(string(answer), func(t *testing.T) {
			f := setup(t)
			master := identity(f.master)

			first, err := f.svc.Create(ctx, master, f.lobby.ID, f.player.Email)
			require.NoError(t, err)

			_, err = f.svc.Create(ctx, master, f.lobby.ID, f.player.Email)
			assert.True(t, apperr.Is(err, apperr.CodeConflict), "got %v", err)

			_, err = f.svc.Respond(ctx, identity(f.player), first.ID, string(answer))
			require.NoError(t, err)

			again, err := f.svc.Create(ctx, master, f.lobby.ID, f.player.Email)
			require.NoError(t, err)
			assert.NotEqual(t, first.ID, again.ID)
		})
	}
}

func TestPendingIndexRejectsDirectDuplicate(t *testing.T) {
	f := setup(t)
	testutil.CreateInvite(t, f.db, f.lobby, f.player, models.InvitePending)

	err := f.db.Create(&models.Invite{LobbyID: f.lobby.ID, PlayerID: f.player.ID, Status: models.InvitePending}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Answered invites do not take part in the index.
	testutil.CreateInvite(t, f.db, f.lobby, f.player, models.InviteRejected)
	testutil.CreateInvite(t, f.db, f.lobby, f.player, models.InviteRejected)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	inv := testutil.CreateInvite(t, f.db, f.lobby, f.player, models.InvitePending)

	_, err := f.svc.Respond(ctx, identity(f.player), inv.ID, "maybe")
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = f.svc.Respond(ctx, identity(f.player), inv.ID, "pending")
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	_, err = f.svc.Respond(ctx, identity(f.master), inv.ID, "accepted")
	assert.True(t, apperr.Is(err, apperr.CodeForbidden))

	_, err = f.svc.Respond(ctx, identity(f.player), 999, "accepted")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	updated, err := f.svc.Respond(ctx, identity(f.player), inv.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.InviteAccepted, updated.Status)

	_, err = f.svc.Respond(ctx, identity(f.player), inv.ID, "accepted")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState), "got %v", err)

	_, err = f.svc.Respond(ctx, identity(f.player), inv.ID, "rejected")
	assert.True(t, apperr.Is(err, apperr.CodeInvalidState), "got %v", err)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	otherMaster := testutil.CreateUser(t, f.db, "Outro", "outro@example.com", models.RoleMaster)
	otherLobby := testutil.CreateLobby(t, f.db, otherMaster, "Alheia")
	otherPlayer := testutil.CreateUser(t, f.db, "Segundo", "segundo@example.com", models.RolePlayer)

	mine := testutil.CreateInvite(t, f.db, f.lobby, f.player, models.InvitePending)
	testutil.CreateInvite(t, f.db, f.lobby, otherPlayer, models.InviteAccepted)
	testutil.CreateInvite(t, f.db, otherLobby, f.player, models.InvitePending)

	masterView, err := f.svc.List(ctx, identity(f.master))
	require.NoError(t, err)
	require.Len(t, masterView, 2)
	for _, inv := range masterView {
		assert.Equal(t, f.lobby.ID, inv.LobbyID)
		require.NotNil(t, inv.Lobby)
		require.NotNil(t, inv.Player)
	}
	assert.Equal(t, "Jogador", masterView[0].Player.Name)

	playerView, err := f.svc.List(ctx, identity(f.player))
	require.NoError(t, err)
	require.Len(t, playerView, 2)
	assert.Equal(t, mine.ID, playerView[0].ID)
	require.NotNil(t, playerView[0].Lobby)
	assert.Equal(t, "Mesa de sábado", playerView[0].Lobby.Name)
	assert.Nil(t, playerView[0].Player)
}

func TestDeleteIsLeave(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	for _, status := range []models.InviteStatus{models.InvitePending, models.InviteAccepted, models.InviteRejected} {
		t.Run(string(status), func(t *testing.T) {
			inv := testutil.CreateInvite(t, f.db, f.lobby, f.player, status)

			err := f.svc.Delete(ctx, identity(f.master), inv.ID)
			assert.True(t, apperr.Is(err, apperr.CodeForbidden))

			require.NoError(t, f.svc.Delete(ctx, identity(f.player), inv.ID))

			err = f.svc.Delete(ctx, identity(f.player), inv.ID)
			assert.True(t, apperr.Is(err, apperr.CodeNotFound))
		})
	}
}
