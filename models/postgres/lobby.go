package postgres

import (
	"time"
)

/*
 * 'Lobby' is a game session container owned by exactly one master.
 * Lobbies are never updated once created.
 */
type Lobby struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	MasterID  uint      `gorm:"not null;index:idx_lobbies_master" json:"masterId"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	Master  *User    `gorm:"foreignKey:MasterID" json:"master,omitempty"`
	Invites []Invite `gorm:"foreignKey:LobbyID;constraint:OnDelete:CASCADE" json:"-"`
}
