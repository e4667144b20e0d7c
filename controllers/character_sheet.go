package controllers

import (
	"net/http"

	"RPGLobby/middleware"
	"RPGLobby/models"
	"RPGLobby/services/sheet"
	"RPGLobby/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Creates a character sheet
// @Description Players only, in a lobby where they hold an accepted invite.
// @Description Numbers may be sent as strings; unreadable values take the defaults.
// @Tags character-sheets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param body body models.SheetInput true "lobbyId plus any sheet field"
// @Success 201 {object} postgres.CharacterSheet
// @Failure 403 {object} object{error=string}
// @Router /character-sheets [post]
// @Security ApiKeyAuth
func CreateCharacterSheet(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.SheetInput
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		created, err := sheets.Create(c.Request.Context(), id, body)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary Lists the requester's character sheets
// @Tags character-sheets
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param lobbyId query int false "Only sheets of this lobby"
// @Success 200 {array} postgres.CharacterSheet
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /character-sheets [get]
// @Security ApiKeyAuth
func ListCharacterSheets(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		lobbyID, err := utils.ParseOptionalQueryID(c, "lobbyId")
		if err != nil {
			_ = c.Error(err)
			return
		}
		mine, err := sheets.ListMine(c.Request.Context(), id, lobbyID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, mine)
	}
}

// @Summary Updates a character sheet
// @Description Absent fields keep their value. The inventory is replaced by the one sent.
// @Tags character-sheets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Sheet id"
// @Param body body models.SheetInput true "fields to change"
// @Success 200 {object} postgres.CharacterSheet
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /character-sheets/{id} [patch]
// @Security ApiKeyAuth
func UpdateCharacterSheet(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		sheetID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.SheetInput
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		updated, err := sheets.Update(c.Request.Context(), id, sheetID, body)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// @Summary Deletes a character sheet and its inventory
// @Tags character-sheets
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Sheet id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /character-sheets/{id} [delete]
// @Security ApiKeyAuth
func DeleteCharacterSheet(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		sheetID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		if err := sheets.Delete(c.Request.Context(), id, sheetID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "character sheet deleted"})
	}
}

// @Summary Lists every character sheet of a lobby
// @Description Owning master only. Each sheet carries the player's name
// @Tags character-sheets
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Lobby id"
// @Success 200 {array} sheet.LobbySheet
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /lobbies/{id}/character-sheets [get]
// @Security ApiKeyAuth
func ListLobbyCharacterSheets(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		lobbyID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		listed, err := sheets.ListForLobby(c.Request.Context(), id, lobbyID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, listed)
	}
}

// @Summary Adds an item to a character sheet's inventory
// @Tags character-sheets
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Sheet id"
// @Param body body models.ItemInput true "itemName and quantity"
// @Success 201 {object} postgres.InventoryItem
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /character-sheets/{id}/inventory [post]
// @Security ApiKeyAuth
func AddInventoryItem(sheets *sheet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.CurrentIdentity(c)
		if err != nil {
			_ = c.Error(err)
			return
		}
		sheetID, err := utils.ParseID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}
		var body models.ItemInput
		if err := bindJSON(c, &body); err != nil {
			_ = c.Error(err)
			return
		}
		item, err := sheets.AddItem(c.Request.Context(), id, sheetID, body)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}
