package postgres

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role is the account role embedded in every issued token.
type Role string

const (
	RolePlayer Role = "player"
	RoleMaster Role = "master"
)

// Valid reports whether r is one of the two account roles.
func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleMaster
}

/*
 * 'User' is a registered account. Masters own lobbies, players receive
 * invites and own character sheets.
 */
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:10;not null" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`

	Lobbies []Lobby  `gorm:"foreignKey:MasterID;constraint:OnDelete:CASCADE" json:"-"`
	Invites []Invite `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
}

// GORM hook normalising the email so the unique index is case-insensitive
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !u.Role.Valid() {
		return errors.New("invalid role")
	}
	return nil
}
