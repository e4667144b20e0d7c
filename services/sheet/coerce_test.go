package sheet

import (
	"encoding/json"
	"testing"

	"RPGLobby/models"
	pgmodels "RPGLobby/models/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) models.SheetInput {
	t.Helper()
	var in models.SheetInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestNewSheetDefaults(t *testing.T) {
	s := newSheet(1, 2, decode(t, `{}`))

	assert.Equal(t, "", s.Name)
	assert.Nil(t, s.Class)
	assert.Nil(t, s.Subclass)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 0, s.XP)
	for _, score := range []int{s.Strength, s.Constitution, s.Dexterity, s.Intelligence, s.Wisdom, s.Charisma} {
		assert.Equal(t, 8, score)
	}
	assert.Empty(t, s.Inventory)
}

func TestNewSheetCoercion(t *testing.T) {
	s := newSheet(1, 2, decode(t, `{
		"name": "Elowen", "class": "Druid", "subclass": "",
		"level": "3", "xp": 900, "strength": 15, "dexterity": "abc", "wisdom": 0,
		"inventory": [{"itemName": "Staff"}, {"itemName": "Herbs", "quantity": "5"}, {"quantity": -2}]
	}`))

	assert.Equal(t, "Elowen", s.Name)
	require.NotNil(t, s.Class)
	assert.Equal(t, "Druid", *s.Class)
	assert.Nil(t, s.Subclass, "empty subclass is stored as null")
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 900, s.XP)
	assert.Equal(t, 15, s.Strength)
	assert.Equal(t, 8, s.Dexterity)
	assert.Equal(t, 8, s.Wisdom)

	require.Len(t, s.Inventory, 3)
	assert.Equal(t, pgmodels.InventoryItem{ItemName: "Staff", Quantity: 1}, s.Inventory[0])
	assert.Equal(t, pgmodels.InventoryItem{ItemName: "Herbs", Quantity: 5}, s.Inventory[1])
	assert.Equal(t, pgmodels.InventoryItem{ItemName: "", Quantity: 1}, s.Inventory[2])
}

func TestApplyUpdate(t *testing.T) {
	class := "Fighter"
	s := pgmodels.CharacterSheet{Name: "Borin", Class: &class, Level: 4, XP: 2700, Strength: 16, Constitution: 14, Dexterity: 10, Intelligence: 9, Wisdom: 11, Charisma: 12}

	applyUpdate(&s, decode(t, `{"name": "", "class": null, "subclass": "Champion", "level": 5, "strength": 0, "xp": "3000"}`))

	assert.Equal(t, "Borin", s.Name, "blank name keeps the old one")
	assert.Nil(t, s.Class)
	require.NotNil(t, s.Subclass)
	assert.Equal(t, "Champion", *s.Subclass)
	assert.Equal(t, 5, s.Level)
	assert.Equal(t, 3000, s.XP)
	assert.Equal(t, 8, s.Strength, "a present zero falls back to the default")
	assert.Equal(t, 14, s.Constitution)
	assert.Equal(t, 12, s.Charisma)
}
