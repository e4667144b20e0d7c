// Package sheet stores players' character sheets and their inventories.
// Request bodies are coerced, not validated: numbers may arrive as numbers
// or numeric strings and anything unreadable takes the field's default.
package sheet

import (
	"context"
	"log/slog"

	"RPGLobby/apperr"
	"RPGLobby/models"
	pgmodels "RPGLobby/models/postgres"
	"RPGLobby/services/auth"
	"RPGLobby/services/gate"
	"RPGLobby/services/lobby"
	"RPGLobby/utils"

	"github.com/samber/oops"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerName is the part of the owner shown to the lobby's master.
type PlayerName struct {
	Name string `json:"name"`
}

// LobbySheet is a sheet as listed for the master of its lobby.
type LobbySheet struct {
	pgmodels.CharacterSheet
	Player PlayerName `json:"player"`
}

type Service struct {
	db      *gorm.DB
	lobbies *lobby.Service
	log     *slog.Logger
}

func NewService(db *gorm.DB, lobbies *lobby.Service, log *slog.Logger) *Service {
	return &Service{db: db, lobbies: lobbies, log: log}
}

// Create adds a sheet for the requesting player in a lobby they have joined.
func (s *Service) Create(ctx context.Context, id auth.Identity, in models.SheetInput) (*pgmodels.CharacterSheet, error) {
	if err := gate.RequirePlayer(id, "create character sheets"); err != nil {
		return nil, err
	}

	// An unreadable lobby id cannot match an accepted invite.
	lobbyID, ok := in.LobbyID.ParseInt()
	if !ok || lobbyID <= 0 {
		return nil, gate.IsMember(nil)
	}

	db := s.db.WithContext(ctx)
	accepted, err := s.findAccepted(db, uint(lobbyID), id.UserID)
	if err != nil {
		return nil, err
	}
	if err := gate.IsMember(accepted); err != nil {
		return nil, err
	}

	sheet := newSheet(id.UserID, uint(lobbyID), in)
	if err := db.Create(&sheet).Error; err != nil {
		return nil, oops.Wrapf(err, "create character sheet")
	}
	s.log.InfoContext(ctx, "character sheet created",
		slog.Uint64("sheet_id", uint64(sheet.ID)),
		slog.Uint64("lobby_id", uint64(sheet.LobbyID)),
		slog.Uint64("player_id", uint64(id.UserID)),
	)
	return &sheet, nil
}

// Update merges in over the requester's sheet and replaces its inventory.
func (s *Service) Update(ctx context.Context, id auth.Identity, sheetID uint, in models.SheetInput) (*pgmodels.CharacterSheet, error) {
	if err := gate.RequirePlayer(id, "update character sheets"); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	sheet, err := s.find(db, sheetID)
	if err != nil {
		return nil, err
	}
	if err := gate.OwnsSheet(id, sheet); err != nil {
		return nil, err
	}

	applyUpdate(sheet, in)
	items := newItems(in.Inventory.Items())
	sheet.Inventory = nil

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(sheet).Error; err != nil {
			return oops.Wrapf(err, "save character sheet %d", sheet.ID)
		}
		if err := tx.Where("character_sheet_id = ?", sheet.ID).Delete(&pgmodels.InventoryItem{}).Error; err != nil {
			return oops.Wrapf(err, "clear inventory of sheet %d", sheet.ID)
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].CharacterSheetID = sheet.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return oops.Wrapf(err, "replace inventory of sheet %d", sheet.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.find(db, sheet.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("character sheet not found")
	}
	s.log.InfoContext(ctx, "character sheet updated", slog.Uint64("sheet_id", uint64(sheet.ID)), slog.Int("items", len(items)))
	return updated, nil
}

// Delete removes the requester's sheet together with its inventory.
func (s *Service) Delete(ctx context.Context, id auth.Identity, sheetID uint) error {
	if err := gate.RequirePlayer(id, "delete character sheets"); err != nil {
		return err
	}
	db := s.db.WithContext(ctx)
	sheet, err := s.find(db, sheetID)
	if err != nil {
		return err
	}
	if err := gate.OwnsSheet(id, sheet); err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_sheet_id = ?", sheet.ID).Delete(&pgmodels.InventoryItem{}).Error; err != nil {
			return oops.Wrapf(err, "delete inventory of sheet %d", sheet.ID)
		}
		if err := tx.Delete(&pgmodels.CharacterSheet{}, sheet.ID).Error; err != nil {
			return oops.Wrapf(err, "delete character sheet %d", sheet.ID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.InfoContext(ctx, "character sheet deleted", slog.Uint64("sheet_id", uint64(sheet.ID)))
	return nil
}

// ListMine returns the requester's sheets, optionally only those of one lobby.
func (s *Service) ListMine(ctx context.Context, id auth.Identity, lobbyID *uint) ([]pgmodels.CharacterSheet, error) {
	if err := gate.RequirePlayer(id, "list their character sheets"); err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Preload("Inventory", orderByID).Where("player_id = ?", id.UserID)
	if lobbyID != nil {
		q = q.Where("lobby_id = ?", *lobbyID)
	}

	sheets := []pgmodels.CharacterSheet{}
	if err := q.Order("id").Find(&sheets).Error; err != nil {
		return nil, oops.Wrapf(err, "list character sheets")
	}
	return sheets, nil
}

// ListForLobby returns every sheet of a lobby owned by the requesting master.
func (s *Service) ListForLobby(ctx context.Context, id auth.Identity, lobbyID uint) ([]LobbySheet, error) {
	if err := gate.RequireMaster(id, "list lobby character sheets"); err != nil {
		return nil, err
	}
	owned, err := s.lobbies.Find(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	if err := gate.OwnsLobby(id, owned); err != nil {
		return nil, err
	}

	var sheets []pgmodels.CharacterSheet
	err = s.db.WithContext(ctx).Preload("Inventory", orderByID).
		Preload("Player", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "name") }).
		Where("lobby_id = ?", lobbyID).
		Order("id").
		Find(&sheets).Error
	if err != nil {
		return nil, oops.Wrapf(err, "list sheets of lobby %d", lobbyID)
	}

	listed := make([]LobbySheet, 0, len(sheets))
	for _, sh := range sheets {
		ls := LobbySheet{CharacterSheet: sh}
		if sh.Player != nil {
			ls.Player.Name = sh.Player.Name
		}
		listed = append(listed, ls)
	}
	return listed, nil
}

// AddItem appends one item to the requester's sheet.
func (s *Service) AddItem(ctx context.Context, id auth.Identity, sheetID uint, in models.ItemInput) (*pgmodels.InventoryItem, error) {
	db := s.db.WithContext(ctx)
	sheet, err := s.find(db, sheetID)
	if err != nil {
		return nil, err
	}
	if err := gate.OwnsSheet(id, sheet); err != nil {
		return nil, err
	}

	item := newItem(in)
	item.CharacterSheetID = sheet.ID
	if err := db.Create(&item).Error; err != nil {
		return nil, oops.Wrapf(err, "add item to sheet %d", sheet.ID)
	}
	s.log.InfoContext(ctx, "inventory item added", slog.Uint64("sheet_id", uint64(sheet.ID)), slog.Uint64("item_id", uint64(item.ID)))
	return &item, nil
}

func (s *Service) find(db *gorm.DB, sheetID uint) (*pgmodels.CharacterSheet, error) {
	var sheet pgmodels.CharacterSheet
	err := db.Preload("Inventory", orderByID).First(&sheet, sheetID).Error
	if utils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "find character sheet %d", sheetID)
	}
	return &sheet, nil
}

func (s *Service) findAccepted(db *gorm.DB, lobbyID, playerID uint) (*pgmodels.Invite, error) {
	var invite pgmodels.Invite
	err := db.Where("lobby_id = ? AND player_id = ? AND status = ?", lobbyID, playerID, pgmodels.InviteAccepted).
		First(&invite).Error
	if utils.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "find membership in lobby %d", lobbyID)
	}
	return &invite, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
