package postgres

import (
	"time"
)

// InviteStatus is the lifecycle state of an invite.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRejected InviteStatus = "rejected"
)

// CanTransition reports whether an invite in status s may move to next.
// Only pending invites can be answered; deletion is handled separately and
// is allowed from every status.
func (s InviteStatus) CanTransition(next InviteStatus) bool {
	return s == InvitePending && (next == InviteAccepted || next == InviteRejected)
}

/*
 * 'Invite' is an offer from a lobby's master to a player. At most one
 * pending invite may exist per (lobby, player) pair, which the partial unique
 * index idx_invites_pending enforces at the storage layer.
 */
type Invite struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	LobbyID   uint         `gorm:"not null;index;uniqueIndex:idx_invites_pending,where:status = 'pending'" json:"lobbyId"`
	PlayerID  uint         `gorm:"not null;index;uniqueIndex:idx_invites_pending,where:status = 'pending'" json:"playerId"`
	Status    InviteStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Relationships
	Lobby  *Lobby `gorm:"foreignKey:LobbyID" json:"lobby,omitempty"`
	Player *User  `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
}
