package postgres

import (
	"time"
)

// Defaults applied when a numeric sheet field is missing or not a number.
const (
	DefaultLevel        = 1
	DefaultXP           = 0
	DefaultAbilityScore = 8
	DefaultQuantity     = 1
)

/*
 * 'CharacterSheet' is a player's character inside one lobby. It can only be
 * created while the player holds an accepted invite for that lobby, and it
 * fully owns its inventory.
 */
type CharacterSheet struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlayerID     uint      `gorm:"not null;index:idx_sheets_player_lobby" json:"playerId"`
	LobbyID      uint      `gorm:"not null;index:idx_sheets_player_lobby;index" json:"lobbyId"`
	Name         string    `gorm:"size:100;not null;default:''" json:"name"`
	Class        *string   `gorm:"size:50" json:"class"`
	Subclass     *string   `gorm:"size:50" json:"subclass"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	XP           int       `gorm:"column:xp;not null;default:0" json:"xp"`
	Strength     int       `gorm:"not null;default:8" json:"strength"`
	Constitution int       `gorm:"not null;default:8" json:"constitution"`
	Dexterity    int       `gorm:"not null;default:8" json:"dexterity"`
	Intelligence int       `gorm:"not null;default:8" json:"intelligence"`
	Wisdom       int       `gorm:"not null;default:8" json:"wisdom"`
	Charisma     int       `gorm:"not null;default:8" json:"charisma"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Relationships
	Player    *User           `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
	Lobby     *Lobby          `gorm:"foreignKey:LobbyID;constraint:OnDelete:CASCADE" json:"-"`
	Inventory []InventoryItem `gorm:"foreignKey:CharacterSheetID;constraint:OnDelete:CASCADE" json:"inventory"`
}

// InventoryItem belongs to exactly one character sheet.
type InventoryItem struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	CharacterSheetID uint   `gorm:"not null;index" json:"characterSheetId"`
	ItemName         string `gorm:"size:100;not null;default:''" json:"itemName"`
	Quantity         int    `gorm:"not null;default:1" json:"quantity"`
}

// All lists every model in dependency order, for migrations.
func All() []any {
	return []any{
		&User{},
		&Lobby{},
		&Invite{},
		&CharacterSheet{},
		&InventoryItem{},
	}
}
