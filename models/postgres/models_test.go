package postgres_test

import (
	"encoding/json"
	"testing"

	"RPGLobby/models/postgres"
	"RPGLobby/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserEmailIsNormalised(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Test User", "  Test@Example.COM ", postgres.RolePlayer)
	assert.Equal(t, "test@example.com", u.Email)

	dup := &postgres.User{Name: "Other", Email: "TEST@example.com", PasswordHash: "x", Role: postgres.RoleMaster}
	assert.ErrorIs(t, db.Create(dup).Error, gorm.ErrDuplicatedKey)
}

func TestUserRoleIsChecked(t *testing.T) {
	db := testutil.NewDB(t)
	u := &postgres.User{Name: "Bard", Email: "bard@example.com", PasswordHash: "x", Role: "bard"}
	assert.Error(t, db.Create(u).Error)

	assert.True(t, postgres.RolePlayer.Valid())
	assert.True(t, postgres.RoleMaster.Valid())
	assert.False(t, postgres.Role("").Valid())
}

func TestInviteTransitions(t *testing.T) {
	tests := []struct {
		from, to postgres.InviteStatus
		want     bool
	}{
		{postgres.InvitePending, postgres.InviteAccepted, true},
		{postgres.InvitePending, postgres.InviteRejected, true},
		{postgres.InvitePending, postgres.InvitePending, false},
		{postgres.InviteAccepted, postgres.InviteRejected, false},
		{postgres.InviteRejected, postgres.InviteAccepted, false},
		{postgres.InviteAccepted, postgres.InvitePending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestInviteStatusDefaultsToPending(t *testing.T) {
	db := testutil.NewDB(t)
	m := testutil.CreateUser(t, db, "Mestre", "mestre@example.com", postgres.RoleMaster)
	p := testutil.CreateUser(t, db, "Jogador", "jogador@example.com", postgres.RolePlayer)
	l := testutil.CreateLobby(t, db, m, "Mesa")

	inv := &postgres.Invite{LobbyID: l.ID, PlayerID: p.ID}
	require.NoError(t, db.Create(inv).Error)

	var stored postgres.Invite
	require.NoError(t, db.First(&stored, inv.ID).Error)
	assert.Equal(t, postgres.InvitePending, stored.Status)
}

func TestSheetDeleteCascadesToInventory(t *testing.T) {
	db := testutil.NewDB(t)
	m := testutil.CreateUser(t, db, "Mestre", "mestre@example.com", postgres.RoleMaster)
	p := testutil.CreateUser(t, db, "Jogador", "jogador@example.com", postgres.RolePlayer)
	l := testutil.CreateLobby(t, db, m, "Mesa")

	sheet := &postgres.CharacterSheet{
		PlayerID: p.ID, LobbyID: l.ID, Name: "Aria",
		Level: 1, Strength: 8, Constitution: 8, Dexterity: 8, Intelligence: 8, Wisdom: 8, Charisma: 8,
		Inventory: []postgres.InventoryItem{{ItemName: "Rope", Quantity: 1}, {ItemName: "Torch", Quantity: 2}},
	}
	require.NoError(t, db.Create(sheet).Error)

	var items int64
	require.NoError(t, db.Model(&postgres.InventoryItem{}).Count(&items).Error)
	require.EqualValues(t, 2, items)

	require.NoError(t, db.Delete(&postgres.CharacterSheet{}, sheet.ID).Error)
	require.NoError(t, db.Model(&postgres.InventoryItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestSheetJSONHidesRelations(t *testing.T) {
	sheet := postgres.CharacterSheet{Name: "Aria", Player: &postgres.User{PasswordHash: "secret"}}
	raw, err := json.Marshal(sheet)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), `"class":null`)
	assert.Contains(t, string(raw), `"xp":0`)
}
