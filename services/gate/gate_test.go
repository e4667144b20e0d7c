package gate_test

import (
	"testing"

	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/gate"

	"github.com/stretchr/testify/assert"
)

var (
	master = auth.Identity{UserID: 1, Role: models.RoleMaster}
	other  = auth.Identity{UserID: 2, Role: models.RoleMaster}
	player = auth.Identity{UserID: 3, Role: models.RolePlayer}
)

func TestRoles(t *testing.T) {
	assert.NoError(t, gate.RequireMaster(master, "create lobbies"))
	assert.True(t, apperr.Is(gate.RequireMaster(player, "create lobbies"), apperr.CodeForbidden))
	assert.NoError(t, gate.RequirePlayer(player, "create sheets"))
	assert.True(t, apperr.Is(gate.RequirePlayer(master, "create sheets"), apperr.CodeForbidden))
}

func TestOwnsLobby(t *testing.T) {
	lobby := &models.Lobby{ID: 10, MasterID: master.UserID}

	assert.NoError(t, gate.OwnsLobby(master, lobby))
	assert.True(t, apperr.Is(gate.OwnsLobby(other, lobby), apperr.CodeForbidden))
	assert.True(t, apperr.Is(gate.OwnsLobby(master, nil), apperr.CodeForbidden), "missing lobby must not be told apart")
	assert.True(t, apperr.Is(gate.OwnsLobby(auth.Identity{UserID: 1, Role: models.RolePlayer}, lobby), apperr.CodeForbidden))
}

func TestCanBeInvited(t *testing.T) {
	assert.NoError(t, gate.CanBeInvited(&models.User{Role: models.RolePlayer}))
	assert.True(t, apperr.Is(gate.CanBeInvited(nil), apperr.CodeNotFound))
	assert.True(t, apperr.Is(gate.CanBeInvited(&models.User{Role: models.RoleMaster}), apperr.CodeValidation))
}

func TestInviteChecks(t *testing.T) {
	invite := &models.Invite{PlayerID: player.UserID, Status: models.InvitePending}

	assert.NoError(t, gate.IsInviteTarget(player, invite))
	assert.True(t, apperr.Is(gate.IsInviteTarget(master, invite), apperr.CodeForbidden))
	assert.True(t, apperr.Is(gate.IsInviteTarget(player, nil), apperr.CodeNotFound))

	assert.NoError(t, gate.CanAnswer(invite, models.InviteAccepted))
	assert.NoError(t, gate.CanAnswer(invite, models.InviteRejected))
	assert.True(t, apperr.Is(gate.CanAnswer(invite, models.InvitePending), apperr.CodeInvalidState))

	for _, done := range []models.InviteStatus{models.InviteAccepted, models.InviteRejected} {
		answered := &models.Invite{PlayerID: player.UserID, Status: done}
		assert.True(t, apperr.Is(gate.CanAnswer(answered, models.InviteAccepted), apperr.CodeInvalidState))
		assert.True(t, apperr.Is(gate.CanAnswer(answered, models.InvitePending), apperr.CodeInvalidState))
	}
}

func TestMembershipAndSheets(t *testing.T) {
	assert.NoError(t, gate.IsMember(&models.Invite{Status: models.InviteAccepted}))
	assert.True(t, apperr.Is(gate.IsMember(nil), apperr.CodeForbidden))
	assert.True(t, apperr.Is(gate.IsMember(&models.Invite{Status: models.InvitePending}), apperr.CodeForbidden))

	sheet := &models.CharacterSheet{PlayerID: player.UserID}
	assert.NoError(t, gate.OwnsSheet(player, sheet))
	assert.True(t, apperr.Is(gate.OwnsSheet(auth.Identity{UserID: 99, Role: models.RolePlayer}, sheet), apperr.CodeForbidden))
	assert.True(t, apperr.Is(gate.OwnsSheet(player, nil), apperr.CodeForbidden))
}
