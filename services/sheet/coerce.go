package sheet

import (
	"RPGLobby/models"
	pgmodels "RPGLobby/models/postgres"
)

// newSheet applies the create defaults to every field of in.
func newSheet(playerID, lobbyID uint, in models.SheetInput) pgmodels.CharacterSheet {
	return pgmodels.CharacterSheet{
		PlayerID:     playerID,
		LobbyID:      lobbyID,
		Name:         in.Name.String(),
		Class:        nonEmpty(in.Class),
		Subclass:     nonEmpty(in.Subclass),
		Level:        in.Level.Int(pgmodels.DefaultLevel),
		XP:           in.XP.Int(pgmodels.DefaultXP),
		Strength:     in.Strength.Int(pgmodels.DefaultAbilityScore),
		Constitution: in.Constitution.Int(pgmodels.DefaultAbilityScore),
		Dexterity:    in.Dexterity.Int(pgmodels.DefaultAbilityScore),
		Intelligence: in.Intelligence.Int(pgmodels.DefaultAbilityScore),
		Wisdom:       in.Wisdom.Int(pgmodels.DefaultAbilityScore),
		Charisma:     in.Charisma.Int(pgmodels.DefaultAbilityScore),
		Inventory:    newItems(in.Inventory.Items()),
	}
}

// applyUpdate merges in over sheet. Absent fields keep their value; present
// numbers go through the create coercion, so a 0 becomes the default again.
// A blank name keeps the previous one. The inventory is not touched here.
func applyUpdate(sheet *pgmodels.CharacterSheet, in models.SheetInput) {
	if name := in.Name.String(); name != "" {
		sheet.Name = name
	}
	if in.Class.Set {
		sheet.Class = in.Class.NullableString()
	}
	if in.Subclass.Set {
		sheet.Subclass = in.Subclass.NullableString()
	}
	setInt(&sheet.Level, in.Level, pgmodels.DefaultLevel)
	setInt(&sheet.XP, in.XP, pgmodels.DefaultXP)
	setInt(&sheet.Strength, in.Strength, pgmodels.DefaultAbilityScore)
	setInt(&sheet.Constitution, in.Constitution, pgmodels.DefaultAbilityScore)
	setInt(&sheet.Dexterity, in.Dexterity, pgmodels.DefaultAbilityScore)
	setInt(&sheet.Intelligence, in.Intelligence, pgmodels.DefaultAbilityScore)
	setInt(&sheet.Wisdom, in.Wisdom, pgmodels.DefaultAbilityScore)
	setInt(&sheet.Charisma, in.Charisma, pgmodels.DefaultAbilityScore)
}

func newItems(in []models.ItemInput) []pgmodels.InventoryItem {
	items := make([]pgmodels.InventoryItem, 0, len(in))
	for _, item := range in {
		items = append(items, newItem(item))
	}
	return items
}

// newItem accepts any item: a missing name is stored as "" and the quantity
// is at least 1.
func newItem(in models.ItemInput) pgmodels.InventoryItem {
	quantity := in.Quantity.Int(pgmodels.DefaultQuantity)
	if quantity < 1 {
		quantity = pgmodels.DefaultQuantity
	}
	return pgmodels.InventoryItem{ItemName: in.ItemName.String(), Quantity: quantity}
}

func setInt(dst *int, v models.Loose, def int) {
	if v.Set {
		*dst = v.Int(def)
	}
}

func nonEmpty(v models.Loose) *string {
	s := v.String()
	if s == "" {
		return nil
	}
	return &s
}
