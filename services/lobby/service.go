// Package lobby is the registry of lobbies owned by masters.
package lobby

import (
	"context"
	"log/slog"
	"strings"

	"RPGLobby/apperr"
	models "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/gate"
	"RPGLobby/utils"

	"github.com/samber/oops"
	"gorm.io/gorm"
)

// Joined is a lobby seen from a player with an accepted invite.
type Joined struct {
	models.Lobby
	InviteID uint `json:"inviteId"`
}

type Service struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewService(db *gorm.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create opens a new lobby owned by the requesting master.
func (s *Service) Create(ctx context.Context, id auth.Identity, name string) (*models.Lobby, error) {
	if err := gate.RequireMaster(id, "create lobbies"); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("lobby name is required")
	}

	lobby := &models.Lobby{Name: name, MasterID: id.UserID}
	if err := s.db.WithContext(ctx).Create(lobby).Error; err != nil {
		return nil, oops.Wrapf(err, "create lobby")
	}
	s.log.InfoContext(ctx, "lobby created", slog.Uint64("lobby_id", uint64(lobby.ID)), slog.Uint64("master_id", uint64(id.UserID)))
	return lobby, nil
}

// ListOwned returns the requesting master's lobbies, oldest first.
func (s *Service) ListOwned(ctx context.Context, id auth.Identity) ([]models.Lobby, error) {
	if err := gate.RequireMaster(id, "list lobbies"); err != nil {
		return nil, err
	}
	lobbies := []models.Lobby{}
	if err := s.db.WithContext(ctx).Where("master_id = ?", id.UserID).Order("id").Find(&lobbies).Error; err != nil {
		return nil, oops.Wrapf(err, "list lobbies")
	}
	return lobbies, nil
}

// ListJoined returns the lobbies the requesting player has accepted an
// invite to, each with the invite id used to leave it and its master.
func (s *Service) ListJoined(ctx context.Context, id auth.Identity) ([]Joined, error) {
	if err := gate.RequirePlayer(id, "list joined lobbies"); err != nil {
		return nil, err
	}
	var invites []models.Invite
	err := s.db.WithContext(ctx).
		Preload("Lobby.Master").
		Where("player_id = ? AND status = ?", id.UserID, models.InviteAccepted).
		Order("id").
		Find(&invites).Error
	if err != nil {
		return nil, oops.Wrapf(err, "list joined lobbies")
	}

	joined := make([]Joined, 0, len(invites))
	for _, inv := range invites {
		if inv.Lobby == nil {
			continue
		}
		joined = append(joined, Joined{Lobby: *inv.Lobby, InviteID: inv.ID})
	}
	return joined, nil
}

// Find loads a lobby by id, nil when it does not exist.
func (s *Service) Find(ctx context.Context, lobbyID uint) (*models.Lobby, error) {
	var lobby models.Lobby
	err := s.db.WithContext(ctx).First(&lobby, lobbyID).Error
	if utils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "find lobby %d", lobbyID)
	}
	return &lobby, nil
}
