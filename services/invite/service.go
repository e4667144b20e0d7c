// Package invite runs the invitation workflow between masters and players.
//
//	pending --accept--> accepted --delete--> (gone)
//	pending --reject--> rejected --delete--> (gone)
//	pending --delete--> (gone)
//
// Answered invites never return to pending. Deleting an accepted invite is
// how a player leaves a lobby.
package invite

import (
	"context"
	"log/slog"
	"strings"

	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/gate"
	"RPGLobby/services/lobby"
	"RPGLobby/utils"

	"github.com/samber/oops"
	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	lobbies *lobby.Service
	log     *slog.Logger
}

func NewService(db *gorm.DB, lobbies *lobby.Service, log *slog.Logger) *Service {
	return &Service{db: db, lobbies: lobbies, log: log}
}

// Create invites the player registered under playerEmail to a lobby owned
// by the requesting master.
func (s *Service) Create(ctx context.Context, id auth.Identity, lobbyID uint, playerEmail string) (*models.Invite, error) {
	if err := gate.RequireMaster(id, "send invites"); err != nil {
		return nil, err
	}
	playerEmail = strings.ToLower(strings.TrimSpace(playerEmail))
	if lobbyID == 0 || playerEmail == "" {
		return nil, apperr.Validation("lobbyId and playerEmail are required")
	}

	db := s.db.WithContext(ctx)

	owned, err := s.lobbies.Find(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	if err := gate.OwnsLobby(id, owned); err != nil {
		return nil, err
	}

	var player *models.User
	var u models.User
	switch err := db.Where("email = ?", playerEmail).First(&u).Error; {
	case err == nil:
		player = &u
	case !utils.IsNotFound(err):
		return nil, oops.Wrapf(err, "find player")
	}
	if err := gate.CanBeInvited(player); err != nil {
		return nil, err
	}

	var pending int64
	err = db.Model(&models.Invite{}).
		Where("lobby_id = ? AND player_id = ? AND status = ?", lobbyID, player.ID, models.InvitePending).
		Count(&pending).Error
	if err != nil {
		return nil, oops.Wrapf(err, "check pending invite")
	}
	if pending > 0 {
		return nil, apperr.Conflict("a pending invite already exists for this player in this lobby")
	}

	// The partial unique index closes the gap between the check above and
	// this insert when two masters' requests race.
	invite := &models.Invite{LobbyID: lobbyID, PlayerID: player.ID, Status: models.InvitePending}
	if err := db.Create(invite).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, apperr.Conflict("a pending invite already exists for this player in this lobby")
		}
		return nil, oops.Wrapf(err, "create invite")
	}

	s.log.InfoContext(ctx, "invite sent",
		slog.Uint64("invite_id", uint64(invite.ID)),
		slog.Uint64("lobby_id", uint64(lobbyID)),
		slog.Uint64("player_id", uint64(player.ID)),
	)
	return invite, nil
}

// List returns the invites relevant to the requester: every invite of the
// master's lobbies, or the player's own invites.
func (s *Service) List(ctx context.Context, id auth.Identity) ([]models.Invite, error) {
	invites := []models.Invite{}
	db := s.db.WithContext(ctx)

	var err error
	if id.IsMaster() {
		err = db.Preload("Lobby").Preload("Player").
			Joins("JOIN lobbies ON lobbies.id = invites.lobby_id").
			Where("lobbies.master_id = ?", id.UserID).
			Order("invites.id").
			Find(&invites).Error
	} else {
		err = db.Preload("Lobby").
			Where("player_id = ?", id.UserID).
			Order("id").
			Find(&invites).Error
	}
	if err != nil {
		return nil, oops.Wrapf(err, "list invites")
	}
	return invites, nil
}

// Respond accepts or rejects a pending invite addressed to the requester.
func (s *Service) Respond(ctx context.Context, id auth.Identity, inviteID uint, status string) (*models.Invite, error) {
	next := models.InviteStatus(status)
	if next != models.InviteAccepted && next != models.InviteRejected {
		return nil, apperr.Validation("status must be %q or %q", models.InviteAccepted, models.InviteRejected)
	}

	db := s.db.WithContext(ctx)
	invite, err := s.find(db, inviteID)
	if err != nil {
		return nil, err
	}
	if err := gate.IsInviteTarget(id, invite); err != nil {
		return nil, err
	}
	if err := gate.CanAnswer(invite, next); err != nil {
		return nil, err
	}

	// Conditional on the row still being pending, so only one of two
	// concurrent answers wins.
	res := db.Model(&models.Invite{}).
		Where("id = ? AND status = ?", invite.ID, models.InvitePending).
		Update("status", next)
	if res.Error != nil {
		return nil, oops.Wrapf(res.Error, "update invite %d", invite.ID)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.InvalidState("invite already answered")
	}

	updated, err := s.find(db, invite.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("invite not found")
	}
	s.log.InfoContext(ctx, "invite answered", slog.Uint64("invite_id", uint64(invite.ID)), slog.String("status", status))
	return updated, nil
}

// Delete removes an invite addressed to the requester, whatever its status.
func (s *Service) Delete(ctx context.Context, id auth.Identity, inviteID uint) error {
	db := s.db.WithContext(ctx)
	invite, err := s.find(db, inviteID)
	if err != nil {
		return err
	}
	if err := gate.IsInviteTarget(id, invite); err != nil {
		return err
	}
	if err := db.Delete(&models.Invite{}, invite.ID).Error; err != nil {
		return oops.Wrapf(err, "delete invite %d", invite.ID)
	}
	s.log.InfoContext(ctx, "invite deleted", slog.Uint64("invite_id", uint64(invite.ID)), slog.String("status", string(invite.Status)))
	return nil
}

func (s *Service) find(db *gorm.DB, inviteID uint) (*models.Invite, error) {
	var invite models.Invite
	err := db.First(&invite, inviteID).Error
	if utils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "find invite %d", inviteID)
	}
	return &invite, nil
}
